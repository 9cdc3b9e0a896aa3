package sweep

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/smallbiznis/reviewqr/internal/clock"
	"github.com/smallbiznis/reviewqr/internal/observability/metrics"
	postercache "github.com/smallbiznis/reviewqr/internal/poster/cache"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cache   *postercache.FileCache
	Clock   clock.Clock
	Log     *zap.Logger
	Metrics *metrics.PosterMetrics `optional:"true"`
	Config  Config                 `optional:"true"`
}

// Worker deletes poster cache files whose modification time exceeds the
// configured max age. Superseded business versions orphan their old cache
// files; nothing else ever removes them.
type Worker struct {
	cache   *postercache.FileCache
	clock   clock.Clock
	log     *zap.Logger
	metrics *metrics.PosterMetrics
	cfg     Config
}

func NewWorker(p Params) *Worker {
	return &Worker{
		cache:   p.Cache,
		clock:   p.Clock,
		log:     p.Log.Named("poster.sweep"),
		metrics: p.Metrics,
		cfg:     p.Config.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if deleted, err := w.RunOnce(); err != nil {
			w.log.Warn("cache sweep failed", zap.Error(err))
		} else if deleted > 0 {
			w.log.Info("cache sweep completed", zap.Int("deleted", deleted))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce walks the cache root and removes expired files plus any business
// directories left empty. Returns the number of files deleted.
func (w *Worker) RunOnce() (int, error) {
	if w.cache == nil {
		return 0, errors.New("sweep_worker_unavailable")
	}

	cutoff := w.clock.Now().Add(-w.cfg.MaxAge)
	deleted := 0

	err := filepath.WalkDir(w.cache.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err == nil {
				deleted++
			}
		}
		return nil
	})
	if err != nil {
		return deleted, err
	}

	w.removeEmptyDirs()
	w.metrics.AddSweepDeleted(deleted)
	return deleted, nil
}

func (w *Worker) removeEmptyDirs() {
	entries, err := os.ReadDir(w.cache.Root())
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(w.cache.Root(), entry.Name())
		// Remove fails on non-empty directories, which is exactly the guard
		// needed here.
		_ = os.Remove(dir)
	}
}
