package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcart/catalog/internal/domain"
)

type fakeServer struct {
	mux       *http.ServeMux
	srv       *httptest.Server
	listCalls int32
	lastPage  string
	lastLimit string
	page      ProductPage
	failList  bool
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{mux: http.NewServeMux()}

	f.mux.HandleFunc("/api/products/cosmeticAll", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.listCalls, 1)
		f.lastPage = r.URL.Query().Get("page")
		f.lastLimit = r.URL.Query().Get("limit")
		if f.failList {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Error retrieving products"})
			return
		}
		json.NewEncoder(w).Encode(f.page)
	})
	f.mux.HandleFunc("/api/products/cosmetic/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Product deleted successfully",
				"product": map[string]int64{"id": 1},
			})
		case http.MethodPut:
			json.NewEncoder(w).Encode(mutationResult{
				Message: "Product updated successfully",
				Product: domain.Product{ID: 1, Name: "Updated"},
			})
		default:
			json.NewEncoder(w).Encode(domain.Product{ID: 1, Name: "Mascara", Price: 20, Category: "Cosmetics"})
		}
	})
	f.mux.HandleFunc("/api/products/cosmetic", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(mutationResult{
			Message: "Product created successfully",
			Product: domain.Product{ID: 9, Name: "New"},
		})
	})

	f.srv = httptest.NewServer(f.mux)
	t.Cleanup(f.srv.Close)
	return f
}

func twoProductPage() ProductPage {
	return ProductPage{
		Products: []domain.Product{
			{ID: 1, Name: "Mascara", Price: 20, Category: "Cosmetics"},
			{ID: 2, Name: "Lipstick", Price: 15.5, Category: "Cosmetics"},
		},
		Total: 2,
		Page:  1,
		Limit: 10,
	}
}

func TestListView_RenderTable(t *testing.T) {
	f := newFakeServer(t)
	f.page = twoProductPage()

	view := NewListView(New(f.srv.URL))
	view.Refresh()
	require.NoError(t, view.Err())

	var buf bytes.Buffer
	view.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "Mascara")
	assert.Contains(t, out, "Lipstick")
	assert.Contains(t, out, "$20")
	assert.Contains(t, out, "$15.5")
}

func TestListView_SendsOneBasedPage(t *testing.T) {
	f := newFakeServer(t)
	f.page = ProductPage{Total: 50}

	view := NewListView(New(f.srv.URL))
	view.SetPageSize(5)
	view.SetPage(3) // zero-based in the view

	assert.Equal(t, "4", f.lastPage)
	assert.Equal(t, "5", f.lastLimit)
}

func TestListView_PageCountUsesServerTotal(t *testing.T) {
	f := newFakeServer(t)
	// server says 35 rows even though this page carries only 2
	page := twoProductPage()
	page.Total = 35
	f.page = page

	view := NewListView(New(f.srv.URL))
	view.Refresh()

	assert.Equal(t, int64(35), view.Total())
	assert.Equal(t, 4, view.PageCount())
}

func TestListView_RefetchAfterMutations(t *testing.T) {
	f := newFakeServer(t)
	f.page = twoProductPage()

	view := NewListView(New(f.srv.URL))
	view.Refresh()
	require.Equal(t, int32(1), atomic.LoadInt32(&f.listCalls))

	require.NoError(t, view.DeleteProduct(1))
	assert.Equal(t, int32(2), atomic.LoadInt32(&f.listCalls))

	require.NoError(t, view.CreateProduct(ProductFields{Name: String("New"), Price: Number(3)}))
	assert.Equal(t, int32(3), atomic.LoadInt32(&f.listCalls))

	require.NoError(t, view.UpdateProduct(1, ProductFields{Name: String("Updated")}))
	assert.Equal(t, int32(4), atomic.LoadInt32(&f.listCalls))
}

func TestListView_ErrorSuppressesTable(t *testing.T) {
	f := newFakeServer(t)
	f.page = twoProductPage()

	view := NewListView(New(f.srv.URL))
	view.Refresh()
	require.NoError(t, view.Err())

	f.failList = true
	view.Refresh()
	require.Error(t, view.Err())

	var buf bytes.Buffer
	view.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "Error fetching products. Please try again.")
	assert.NotContains(t, out, "Mascara", "error state must not show stale data")
}

func TestDetailView_LoadAndRender(t *testing.T) {
	f := newFakeServer(t)

	view := NewDetailView(New(f.srv.URL), 1)
	view.Load()
	require.NoError(t, view.Err())

	var buf bytes.Buffer
	view.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "Mascara")
	assert.Contains(t, out, "$20")
	assert.Contains(t, out, "Cosmetics")
}
