package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcart/catalog/internal/domain"
)

func TestClient_GetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_CreateSendsOnlySetFields(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/products/cosmetic", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(mutationResult{Product: domain.Product{ID: 1, Name: "Mascara"}})
	}))
	defer srv.Close()

	p, err := New(srv.URL).Create(ProductFields{Name: String("Mascara"), Price: Number(15)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	assert.Equal(t, "Mascara", got["name"])
	assert.Equal(t, 15.0, got["price"])
	_, hasCategory := got["category"]
	assert.False(t, hasCategory, "omitted fields must not appear in the payload")
}

func TestClient_ValidationErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Name is required and must be a string"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Create(ProductFields{Price: Number(100)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required and must be a string")
}

func TestClient_CreateWithImage(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "swatch.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("fake-png-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "Foundation", r.FormValue("name"))
		assert.Equal(t, "22.5", r.FormValue("price"))

		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		file.Close()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(mutationResult{
			Product: domain.Product{ID: 2, Name: "Foundation", ImageURL: "http://x/uploads/gen.png"},
		})
	}))
	defer srv.Close()

	p, err := New(srv.URL).CreateWithImage(
		ProductFields{Name: String("Foundation"), Price: Number(22.5)}, imgPath)
	require.NoError(t, err)
	assert.Equal(t, "http://x/uploads/gen.png", p.ImageURL)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$20", FormatPrice(20))
	assert.Equal(t, "$15.5", FormatPrice(15.5))
	assert.Equal(t, "$9.99", FormatPrice(9.99))
}
