package catalog

import (
	"context"

	"github.com/pkg/errors"

	"github.com/glowcart/catalog/internal/domain"
)

// ErrNotFound is returned when no row matches the requested product id.
// Absence is not a driver failure; callers map it to a 404.
var ErrNotFound = errors.New("product not found")

// ProductRepository handles database operations for catalog products.
// All statements are parameterized; handlers never build SQL themselves.
type ProductRepository interface {
	// List retrieves up to limit products starting at offset.
	// An empty page is a normal result, not an error.
	List(ctx context.Context, limit, offset int) ([]domain.Product, error)

	// Count returns the total number of products for pagination math.
	Count(ctx context.Context) (int64, error)

	// GetByID retrieves a product by id, ErrNotFound when missing
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create inserts a new product, assigning id and timestamps
	Create(ctx context.Context, p *domain.Product) error

	// Update overwrites all mutable columns for the product's id and
	// refreshes updated_at. ErrNotFound when no row matched.
	Update(ctx context.Context, p *domain.Product) error

	// Delete removes the row, ErrNotFound when nothing was affected
	Delete(ctx context.Context, id int64) error

	// ImageReferenced reports whether any product's image_url still
	// points at the given uploaded filename.
	ImageReferenced(ctx context.Context, filename string) (bool, error)
}
