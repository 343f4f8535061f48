// Package main provides catalog-export, which turns CDN index documents into
// SQL import statements and product JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/di"
	"github.com/kctmenswear/catalog-importer/internal/emit"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/logger"
	"github.com/kctmenswear/catalog-importer/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load("catalog-export", args, os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog-export: %v\n", err)
		return domainerrors.ExitCode(err)
	}

	// Without explicit inputs, read the index cdn-index writes into the output dir.
	if len(cfg.Export.IndexFiles) == 0 {
		cfg.Export.IndexFiles = []string{filepath.Join(cfg.Export.OutputDir, emit.IndexFile)}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := di.NewContainer(cfg)
	defer injector.Shutdown() //nolint:errcheck // Best effort on exit

	log := do.MustInvoke[*logger.Logger](injector)

	exporter, err := do.Invoke[*service.ExportService](injector)
	if err != nil {
		log.Error("failed to initialize", "error", err)
		return domainerrors.ExitCode(err)
	}

	idx, err := exporter.LoadIndexes(cfg.Export.IndexFiles)
	if err != nil {
		log.Error("failed to load index", "error", err)
		return domainerrors.ExitCode(err)
	}

	res, err := exporter.Export(ctx, idx)
	if err != nil {
		log.Error("export failed", "error", err)
		return domainerrors.ExitCode(err)
	}

	if len(res.Written) == 0 {
		fmt.Println("No products found in index, nothing written")
		return 0
	}

	fmt.Printf("Generated import for %d products\n", len(res.Records))
	for _, section := range res.Sections {
		fmt.Printf("  %s: %d products\n", section.Title, len(section.Records))
	}
	for _, path := range res.Written {
		fmt.Printf("File: %s\n", path)
	}
	return 0
}
