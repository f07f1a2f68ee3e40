package client

import (
	"fmt"
	"io"

	"github.com/glowcart/catalog/internal/domain"
)

// DetailView fetches and renders a single product by id with the same
// loading/error/content tri-state as the list view.
type DetailView struct {
	api *Client
	id  int64

	product *domain.Product
	loading bool
	err     error
}

func NewDetailView(api *Client, id int64) *DetailView {
	return &DetailView{api: api, id: id}
}

func (v *DetailView) Load() {
	v.loading = true
	v.err = nil

	p, err := v.api.Get(v.id)
	v.loading = false
	if err != nil {
		v.err = err
		v.product = nil
		return
	}
	v.product = p
}

// SetID switches to another product and reloads
func (v *DetailView) SetID(id int64) {
	v.id = id
	v.Load()
}

func (v *DetailView) Product() *domain.Product { return v.product }
func (v *DetailView) Err() error               { return v.err }

func (v *DetailView) Render(w io.Writer) {
	if v.loading {
		fmt.Fprintln(w, "Loading product...")
		return
	}
	if v.err != nil {
		fmt.Fprintln(w, "Error fetching product details. Please try again.")
		return
	}
	if v.product == nil {
		return
	}

	p := v.product
	fmt.Fprintf(w, "%s\n", p.Name)
	fmt.Fprintf(w, "Price: %s\n", FormatPrice(p.Price))
	if p.Category != "" {
		fmt.Fprintf(w, "Category: %s\n", p.Category)
	}
	if p.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", p.Description)
	}
	if p.Usages != "" {
		fmt.Fprintf(w, "Usages: %s\n", p.Usages)
	}
	if p.ImageURL != "" {
		fmt.Fprintf(w, "Image: %s\n", p.ImageURL)
	}
}
