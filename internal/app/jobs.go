package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/glowcart/catalog/internal/catalog"
)

// Files younger than this are skipped: an upload may exist briefly
// before its row insert commits.
const orphanGrace = time.Hour

func (a *Application) registerJobs() error {
	_, err := a.sched.AddFunc("@hourly", func() {
		if err := SweepOrphanUploads(context.Background(), a.repo, a.appConfig.Web.UploadDir, orphanGrace); err != nil {
			zap.L().Error("upload sweep failed", zap.Error(err))
		}
	})
	return err
}

// SweepOrphanUploads removes files in the upload directory that no
// product row references. The handlers already clean up after a failed
// insert; the sweep covers crashes between the file save and row write.
func SweepOrphanUploads(ctx context.Context, repo catalog.ProductRepository, dir string, grace time.Duration) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-grace)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		referenced, err := repo.ImageReferenced(ctx, entry.Name())
		if err != nil {
			return err
		}
		if referenced {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			zap.L().Warn("failed to remove orphaned upload",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		zap.L().Info("removed orphaned upload", zap.String("file", entry.Name()))
	}
	return nil
}
