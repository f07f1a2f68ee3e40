package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcart/catalog/internal/domain"
)

func TestMemoryRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewMemoryProductRepository()
	p := domain.Product{Name: "Mascara", Price: 15, Category: "Cosmetics"}
	require.NoError(t, repo.Create(context.Background(), &p))

	assert.Equal(t, int64(1), p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mascara", got.Name)
	assert.Equal(t, 15.0, got.Price)
	assert.Equal(t, "Cosmetics", got.Category)
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryProductRepository()
	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_ListPagination(t *testing.T) {
	repo := NewMemoryProductRepository()
	repo.Seed(
		domain.Product{Name: "a"},
		domain.Product{Name: "b"},
		domain.Product{Name: "c"},
		domain.Product{Name: "d"},
		domain.Product{Name: "e"},
	)

	t.Run("first page", func(t *testing.T) {
		rows, err := repo.List(context.Background(), 2, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "a", rows[0].Name)
		assert.Equal(t, "b", rows[1].Name)
	})

	t.Run("middle page", func(t *testing.T) {
		rows, err := repo.List(context.Background(), 2, 2)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "c", rows[0].Name)
	})

	t.Run("short last page", func(t *testing.T) {
		rows, err := repo.List(context.Background(), 2, 4)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "e", rows[0].Name)
	})

	t.Run("past the end is empty not error", func(t *testing.T) {
		rows, err := repo.List(context.Background(), 10, 100)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestMemoryRepository_UpdatePreservesCreatedAt(t *testing.T) {
	repo := NewMemoryProductRepository()
	p := domain.Product{Name: "Lipstick", Price: 9}
	require.NoError(t, repo.Create(context.Background(), &p))
	created := p.CreatedAt

	p.Name = "Lipstick Pro"
	require.NoError(t, repo.Update(context.Background(), &p))

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lipstick Pro", got.Name)
	assert.Equal(t, created, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(created))
}

func TestMemoryRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryProductRepository()
	err := repo.Update(context.Background(), &domain.Product{ID: 7, Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_DeleteTwice(t *testing.T) {
	repo := NewMemoryProductRepository()
	p := domain.Product{Name: "Toner"}
	require.NoError(t, repo.Create(context.Background(), &p))

	require.NoError(t, repo.Delete(context.Background(), p.ID))
	assert.ErrorIs(t, repo.Delete(context.Background(), p.ID), ErrNotFound)
}

func TestMemoryRepository_ImageReferenced(t *testing.T) {
	repo := NewMemoryProductRepository()
	repo.Seed(domain.Product{Name: "Serum", ImageURL: "http://localhost:5000/uploads/abc123.png"})

	ok, err := repo.ImageReferenced(context.Background(), "abc123.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ImageReferenced(context.Background(), "missing.png")
	require.NoError(t, err)
	assert.False(t, ok)
}
