package restapi

import (
	"net/http"
	"strconv"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/glowcart/catalog/internal/catalog"
	"github.com/glowcart/catalog/internal/domain"
	"github.com/glowcart/catalog/internal/webserver"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ProductAPI serves the catalog CRUD endpoints
type ProductAPI struct {
	repo      catalog.ProductRepository
	bus       EventBus.Bus
	uploadDir string
}

func NewProductAPI(repo catalog.ProductRepository, bus EventBus.Bus, uploadDir string) *ProductAPI {
	return &ProductAPI{repo: repo, bus: bus, uploadDir: uploadDir}
}

// Register binds the product routes under /api/products
func (h *ProductAPI) Register(s *webserver.WebServer) {
	s.ApiGET("/cosmeticAll", h.listProducts)
	s.ApiGET("/cosmetic/:id", h.getProduct)
	s.ApiPOST("/cosmetic", h.createProduct)
	s.ApiPUT("/cosmetic/:id", h.updateProduct)
	s.ApiDELETE("/cosmetic/:id", h.deleteProduct)
}

func (h *ProductAPI) publish(topic string, p domain.Product) {
	if h.bus != nil {
		h.bus.Publish(topic, p)
	}
}

func (h *ProductAPI) listProducts(c echo.Context) error {
	page := cast.ToInt(c.QueryParam("page"))
	if page < 1 {
		page = defaultPage
	}
	limit := cast.ToInt(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	ctx := c.Request().Context()
	total, err := h.repo.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error retrieving products")
	}
	rows, err := h.repo.List(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error retrieving products")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": rows,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *ProductAPI) getProduct(c echo.Context) error {
	idStr := c.Param("id")
	if idStr == "" {
		return fail(c, http.StatusBadRequest, "ID parameter is required")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		// a non-numeric id can never match a row
		return fail(c, http.StatusNotFound, "Product not found")
	}

	p, err := h.repo.GetByID(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		zap.L().Error("failed to get product", zap.Int64("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error retrieving product")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductAPI) createProduct(c echo.Context) error {
	payload, berr := bindProductPayload(c)
	if berr != nil {
		switch berr.Field {
		case "name":
			return fail(c, http.StatusBadRequest, "Name is required and must be a string")
		case "price":
			return fail(c, http.StatusBadRequest, "Price is required and must be a number")
		default:
			return fail(c, http.StatusBadRequest, "Invalid request body")
		}
	}
	if payload.Name == nil || *payload.Name == "" {
		return fail(c, http.StatusBadRequest, "Name is required and must be a string")
	}
	if payload.Price == nil {
		return fail(c, http.StatusBadRequest, "Price is required and must be a number")
	}

	imageURL, savedFile, err := h.saveUpload(c)
	if err != nil {
		zap.L().Error("failed to store uploaded image", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error creating product")
	}

	p := domain.Product{
		Name:        *payload.Name,
		Price:       *payload.Price,
		Category:    strVal(payload.Category),
		Description: strVal(payload.Description),
		Usages:      strVal(payload.Usages),
	}
	// an uploaded file wins over a body-supplied image_url
	if imageURL != "" {
		p.ImageURL = imageURL
	} else if payload.ImageURL != nil {
		p.ImageURL = *payload.ImageURL
	}

	if err := h.repo.Create(c.Request().Context(), &p); err != nil {
		h.removeUpload(savedFile)
		zap.L().Error("failed to create product", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error creating product")
	}

	h.publish(domain.EventProductCreated, p)
	return envelope(c, http.StatusCreated, "Product created successfully", p)
}

func (h *ProductAPI) updateProduct(c echo.Context) error {
	idStr := c.Param("id")
	if idStr == "" {
		return fail(c, http.StatusBadRequest, "ID parameter is required")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}

	payload, berr := bindProductPayload(c)
	if berr != nil {
		switch berr.Field {
		case "name":
			return fail(c, http.StatusBadRequest, "Name must be a string")
		case "price":
			return fail(c, http.StatusBadRequest, "Price must be a number")
		default:
			return fail(c, http.StatusBadRequest, "Invalid request body")
		}
	}

	ctx := c.Request().Context()
	p, err := h.repo.GetByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		zap.L().Error("failed to load product for update", zap.Int64("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error updating product")
	}

	// merge over the existing row: omitted fields keep their values
	if payload.Name != nil {
		p.Name = *payload.Name
	}
	if payload.Price != nil {
		p.Price = *payload.Price
	}
	if payload.Category != nil {
		p.Category = *payload.Category
	}
	if payload.Description != nil {
		p.Description = *payload.Description
	}
	if payload.Usages != nil {
		p.Usages = *payload.Usages
	}

	imageURL, savedFile, err := h.saveUpload(c)
	if err != nil {
		zap.L().Error("failed to store uploaded image", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error updating product")
	}
	// a new upload overrides image_url; no upload leaves it untouched
	// unless the body supplied one
	if imageURL != "" {
		p.ImageURL = imageURL
	} else if payload.ImageURL != nil {
		p.ImageURL = *payload.ImageURL
	}

	if err := h.repo.Update(ctx, p); err != nil {
		h.removeUpload(savedFile)
		if errors.Is(err, catalog.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Product not found")
		}
		zap.L().Error("failed to update product", zap.Int64("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error updating product")
	}

	h.publish(domain.EventProductUpdated, *p)
	return envelope(c, http.StatusOK, "Product updated successfully", p)
}

func (h *ProductAPI) deleteProduct(c echo.Context) error {
	idStr := c.Param("id")
	if idStr == "" {
		return fail(c, http.StatusBadRequest, "ID parameter is required")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}

	err = h.repo.Delete(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		zap.L().Error("failed to delete product", zap.Int64("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error deleting product")
	}

	h.publish(domain.EventProductDeleted, domain.Product{ID: id})
	return envelope(c, http.StatusOK, "Product deleted successfully", echo.Map{"id": id})
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
