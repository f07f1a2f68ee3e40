package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"

	"github.com/glowcart/catalog/internal/domain"
)

// ErrNotFound is returned when the server reports 404 for a product id.
var ErrNotFound = errors.New("product not found")

// Client is a typed HTTP client for the catalog API
type Client struct {
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

// ProductPage is one page of the list endpoint with the server-reported
// total row count.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// ProductFields carries fields for create/update requests. Nil fields
// are omitted from the payload, so updates merge over the stored row.
type ProductFields struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Usages      *string  `json:"usages,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

type mutationResult struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

func String(v string) *string   { return &v }
func Number(v float64) *float64 { return &v }

func (c *Client) url(path string) string {
	return c.baseURL + "/api/products" + path
}

// List fetches one page; page is 1-based as the server expects.
func (c *Client) List(page, limit int) (*ProductPage, error) {
	var (
		body []byte
		code int
	)
	err := gout.GET(c.url("/cosmeticAll")).
		SetQuery(gout.H{"page": page, "limit": limit}).
		BindBody(&body).Code(&code).Do()
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	var out ProductPage
	if err := decodeResponse(code, body, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Get(id int64) (*domain.Product, error) {
	var (
		body []byte
		code int
	)
	err := gout.GET(c.url("/cosmetic/" + strconv.FormatInt(id, 10))).
		BindBody(&body).Code(&code).Do()
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	var out domain.Product
	if err := decodeResponse(code, body, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Create(fields ProductFields) (*domain.Product, error) {
	var (
		body []byte
		code int
	)
	err := gout.POST(c.url("/cosmetic")).
		SetJSON(fields).
		BindBody(&body).Code(&code).Do()
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	var out mutationResult
	if err := decodeResponse(code, body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// CreateWithImage submits a multipart create with the image file; the
// server stores the file and assigns the image_url itself.
func (c *Client) CreateWithImage(fields ProductFields, imagePath string) (*domain.Product, error) {
	form := fieldsToForm(fields)
	form["image"] = gout.FormFile(imagePath)

	var (
		body []byte
		code int
	)
	err := gout.POST(c.url("/cosmetic")).
		SetForm(form).
		BindBody(&body).Code(&code).Do()
	if err != nil {
		return nil, errors.Wrap(err, "create product with image")
	}
	var out mutationResult
	if err := decodeResponse(code, body, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (c *Client) Update(id int64, fields ProductFields) (*domain.Product, error) {
	var (
		body []byte
		code int
	)
	err := gout.PUT(c.url("/cosmetic/" + strconv.FormatInt(id, 10))).
		SetJSON(fields).
		BindBody(&body).Code(&code).Do()
	if err != nil {
		return nil, errors.Wrap(err, "update product")
	}
	var out mutationResult
	if err := decodeResponse(code, body, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (c *Client) Delete(id int64) error {
	var (
		body []byte
		code int
	)
	err := gout.DELETE(c.url("/cosmetic/" + strconv.FormatInt(id, 10))).
		BindBody(&body).Code(&code).Do()
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	return decodeResponse(code, body, http.StatusOK, nil)
}

func decodeResponse(code int, body []byte, want int, out interface{}) error {
	if code == want {
		if out == nil {
			return nil
		}
		return errors.Wrap(json.Unmarshal(body, out), "decode response")
	}
	if code == http.StatusNotFound {
		return ErrNotFound
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return errors.Errorf("api error (%d): %s", code, apiErr.Error)
	}
	return errors.Errorf("unexpected status %d", code)
}

func fieldsToForm(fields ProductFields) gout.H {
	form := gout.H{}
	if fields.Name != nil {
		form["name"] = *fields.Name
	}
	if fields.Price != nil {
		form["price"] = strconv.FormatFloat(*fields.Price, 'f', -1, 64)
	}
	if fields.Category != nil {
		form["category"] = *fields.Category
	}
	if fields.Description != nil {
		form["description"] = *fields.Description
	}
	if fields.Usages != nil {
		form["usages"] = *fields.Usages
	}
	if fields.ImageURL != nil {
		form["image_url"] = *fields.ImageURL
	}
	return form
}

// FormatPrice renders a price the way the UI shows it, e.g. "$20".
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%s", strconv.FormatFloat(v, 'f', -1, 64))
}
