package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcart/catalog/internal/catalog"
	"github.com/glowcart/catalog/internal/domain"
)

func writeUpload(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
	return path
}

func TestSweepOrphanUploads(t *testing.T) {
	dir := t.TempDir()
	repo := catalog.NewMemoryProductRepository()
	repo.Seed(domain.Product{
		Name:     "Serum",
		ImageURL: "http://localhost:5000/uploads/kept.png",
	})

	orphanOld := writeUpload(t, dir, "orphan.png", 2*time.Hour)
	keptOld := writeUpload(t, dir, "kept.png", 2*time.Hour)
	orphanFresh := writeUpload(t, dir, "fresh.png", time.Minute)

	require.NoError(t, SweepOrphanUploads(context.Background(), repo, dir, time.Hour))

	assert.NoFileExists(t, orphanOld, "old unreferenced file should be removed")
	assert.FileExists(t, keptOld, "referenced file must survive")
	assert.FileExists(t, orphanFresh, "files within the grace period must survive")
}

func TestSweepOrphanUploads_MissingDir(t *testing.T) {
	repo := catalog.NewMemoryProductRepository()
	err := SweepOrphanUploads(context.Background(), repo, filepath.Join(t.TempDir(), "nope"), time.Hour)
	assert.NoError(t, err)
}
