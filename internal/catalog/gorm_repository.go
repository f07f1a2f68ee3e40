package catalog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/glowcart/catalog/internal/domain"
)

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	var rows []domain.Product
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return rows, nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return total, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return &p, nil
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.Wrap(err, "create product")
	}
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"price":       p.Price,
			"category":    p.Category,
			"description": p.Description,
			"usages":      p.Usages,
			"image_url":   p.ImageURL,
			"updated_at":  p.UpdatedAt,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProductRepository) ImageReferenced(ctx context.Context, filename string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("image_url LIKE ?", "%"+filename).Count(&total).Error
	if err != nil {
		return false, errors.Wrap(err, "check image reference")
	}
	return total > 0, nil
}
