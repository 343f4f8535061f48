// Package main provides cdn-index, which scans catalog image folders and writes
// the CDN index document and URL lists.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/di"
	"github.com/kctmenswear/catalog-importer/internal/di/providers"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/logger"
	"github.com/kctmenswear/catalog-importer/internal/scanner"
	"github.com/kctmenswear/catalog-importer/internal/service"
	"github.com/kctmenswear/catalog-importer/internal/watcher"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load("cdn-index", args, os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cdn-index: %v\n", err)
		return domainerrors.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := di.NewContainer(cfg)
	defer injector.Shutdown() //nolint:errcheck // Best effort on exit

	log := do.MustInvoke[*logger.Logger](injector)

	indexer, err := do.Invoke[*service.IndexService](injector)
	if err != nil {
		log.Error("failed to initialize", "error", err)
		return domainerrors.ExitCode(err)
	}

	title := service.SummaryTitle(cfg.Catalog.Roots)
	fmt.Printf("Generating CDN URLs for %s images...\n", title)

	res, err := indexer.Run(ctx)
	if err != nil {
		log.Error("index failed", "error", err)
		return domainerrors.ExitCode(err)
	}
	if res.Index.Empty() {
		fmt.Println("No data found in target directories")
	} else {
		service.WriteSummary(os.Stdout, title, res)
	}

	if !cfg.Watch.Enabled {
		return 0
	}

	w, err := do.Invoke[*providers.FileWatcherHandle](injector)
	if err != nil {
		log.Error("failed to start watcher", "error", err)
		return domainerrors.ExitCode(err)
	}
	batcher := do.MustInvoke[*watcher.Batcher](injector)

	log.Info("watching for changes, press Ctrl+C to stop")
	err = indexer.Watch(ctx, w.Events(), batcher, res.Index, func(res *service.IndexResult, diff scanner.IndexDiff) {
		if diff.Empty() {
			log.Info("re-indexed, no catalog changes", "run", res.RunID)
			return
		}
		log.Info("re-indexed",
			"run", res.RunID,
			"added_products", diff.AddedProducts,
			"removed_products", diff.RemovedProducts,
			"added_images", len(diff.AddedImages),
			"removed_images", len(diff.RemovedImages),
		)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("watch failed", "error", err)
		return domainerrors.ExitCode(err)
	}

	log.Info("stopped watching")
	return 0
}
