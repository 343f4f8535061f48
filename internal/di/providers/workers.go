package providers

import (
	"context"
	"os"

	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/logger"
	"github.com/kctmenswear/catalog-importer/internal/tables"
	"github.com/kctmenswear/catalog-importer/internal/watcher"
)

// FileWatcherHandle wraps the file watcher with shutdown capability.
type FileWatcherHandle struct {
	*watcher.Watcher
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *FileWatcherHandle) Shutdown() error {
	h.cancel()
	return h.Watcher.Stop()
}

// ProvideFileWatcher provides a started watcher over every existing catalog root.
func ProvideFileWatcher(i do.Injector) (*FileWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	t := do.MustInvoke[*tables.Tables](i)
	log := do.MustInvoke[*logger.Logger](i)

	w, err := watcher.New(log.Logger, watcher.Options{
		Extensions:  t.Extensions,
		SettleDelay: cfg.Watch.SettleDelay,
	})
	if err != nil {
		return nil, err
	}

	watched := 0
	for _, root := range cfg.Catalog.Roots {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			log.Warn("catalog root does not exist, not watching", "path", root)
			continue
		}
		if err := w.Watch(root); err != nil {
			_ = w.Stop()
			return nil, err
		}
		log.Info("watching catalog root", "path", root)
		watched++
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("file watcher error", "error", err)
		}
	}()

	go func() {
		for {
			select {
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				log.Warn("file watcher error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("file watcher started", "roots", watched, "settle_delay", cfg.Watch.SettleDelay)

	return &FileWatcherHandle{
		Watcher: w,
		cancel:  cancel,
	}, nil
}

// ProvideBatcher provides the change batcher used in watch mode. Re-index runs
// are spaced by at least the settle delay.
func ProvideBatcher(i do.Injector) (*watcher.Batcher, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return watcher.NewBatcher(log.Logger, cfg.Watch.SettleDelay, cfg.Watch.SettleDelay), nil
}
