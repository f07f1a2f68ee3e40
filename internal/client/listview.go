package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/glowcart/catalog/internal/domain"
)

// ListView mirrors the browser list page: a zero-based page index, the
// current page of products and the server-reported total. It owns no
// authoritative state; every mutation triggers a refetch.
type ListView struct {
	api      *Client
	page     int
	pageSize int

	products []domain.Product
	total    int64
	loading  bool
	err      error
}

func NewListView(api *Client) *ListView {
	return &ListView{api: api, pageSize: 10}
}

// Refresh issues one list request. Loading and error are mutually
// exclusive render states; an error clears the table entirely.
func (v *ListView) Refresh() {
	v.loading = true
	v.err = nil

	page, err := v.api.List(v.page+1, v.pageSize)
	v.loading = false
	if err != nil {
		v.err = err
		v.products = nil
		return
	}
	v.products = page.Products
	v.total = page.Total
}

func (v *ListView) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	v.page = page
	v.Refresh()
}

func (v *ListView) SetPageSize(size int) {
	if size < 1 {
		size = 10
	}
	v.pageSize = size
	v.page = 0
	v.Refresh()
}

func (v *ListView) Products() []domain.Product { return v.products }
func (v *ListView) Total() int64               { return v.total }
func (v *ListView) Err() error                 { return v.err }
func (v *ListView) Loading() bool              { return v.loading }

// PageCount derives pagination from the server total, never from the
// length of the fetched page.
func (v *ListView) PageCount() int {
	if v.pageSize < 1 {
		return 0
	}
	return int((v.total + int64(v.pageSize) - 1) / int64(v.pageSize))
}

func (v *ListView) CreateProduct(fields ProductFields) error {
	if _, err := v.api.Create(fields); err != nil {
		return err
	}
	v.Refresh()
	return nil
}

func (v *ListView) UpdateProduct(id int64, fields ProductFields) error {
	if _, err := v.api.Update(id, fields); err != nil {
		return err
	}
	v.Refresh()
	return nil
}

func (v *ListView) DeleteProduct(id int64) error {
	if err := v.api.Delete(id); err != nil {
		return err
	}
	v.Refresh()
	return nil
}

// Render writes the current state as an aligned table. The table is
// suppressed while loading or after an error.
func (v *ListView) Render(w io.Writer) {
	if v.loading {
		fmt.Fprintln(w, "Loading products...")
		return
	}
	if v.err != nil {
		fmt.Fprintln(w, "Error fetching products. Please try again.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY")
	for _, p := range v.products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, FormatPrice(p.Price), p.Category)
	}
	tw.Flush()
	fmt.Fprintf(w, "Page %d of %d (%d products)\n", v.page+1, v.PageCount(), v.total)
}
