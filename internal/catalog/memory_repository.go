package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/glowcart/catalog/internal/domain"
)

// MemoryProductRepository keeps products in an in-process map. It backs
// demo mode and handler tests; semantics mirror GormProductRepository.
type MemoryProductRepository struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]domain.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{rows: make(map[int64]domain.Product)}
}

// Seed loads fixture rows, assigning ids in insertion order.
func (r *MemoryProductRepository) Seed(products ...domain.Product) {
	for i := range products {
		_ = r.Create(context.Background(), &products[i])
	}
}

func (r *MemoryProductRepository) List(_ context.Context, limit, offset int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.Product, 0, limit)
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, r.rows[ids[i]])
	}
	return out, nil
}

func (r *MemoryProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *MemoryProductRepository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepository) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := time.Now()
	p.ID = r.seq
	p.CreatedAt = now
	p.UpdatedAt = now
	r.rows[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.rows[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	r.rows[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *MemoryProductRepository) ImageReferenced(_ context.Context, filename string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.ImageURL != "" && strings.HasSuffix(p.ImageURL, filename) {
			return true, nil
		}
	}
	return false, nil
}
