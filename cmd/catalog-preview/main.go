// Package main provides catalog-preview, a dry run that scans the catalog roots
// and prints the record inferred for every product without writing files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/samber/do/v2"

	"github.com/kctmenswear/catalog-importer/internal/catalog"
	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/di"
	"github.com/kctmenswear/catalog-importer/internal/domain"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/logger"
	"github.com/kctmenswear/catalog-importer/internal/scanner"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg, err := config.Load("catalog-preview", args, os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog-preview: %v\n", err)
		return domainerrors.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := di.NewContainer(cfg)
	defer injector.Shutdown() //nolint:errcheck // Best effort on exit

	log := do.MustInvoke[*logger.Logger](injector)

	discoverer, err := do.Invoke[*scanner.Discoverer](injector)
	if err != nil {
		log.Error("failed to initialize", "error", err)
		return domainerrors.ExitCode(err)
	}
	builder := do.MustInvoke[*catalog.Builder](injector)

	idx, stats, err := discoverer.Discover(ctx, cfg.Catalog.BaseURL, cfg.Catalog.Roots...)
	if err != nil {
		log.Error("discovery failed", "error", err)
		return domainerrors.ExitCode(err)
	}

	records, err := builder.Build(ctx, idx)
	if err != nil {
		log.Error("inference failed", "error", err)
		return domainerrors.ExitCode(err)
	}

	for _, section := range builder.Sections(records) {
		fmt.Fprintf(out, "\n=== %s ===\n", section.Title)
		for _, rec := range section.Records {
			printRecord(out, rec)
		}
	}

	fmt.Fprintf(out, "\n=== Preview Complete ===\n")
	fmt.Fprintf(out, "Roots: %d (missing: %d)\n", stats.Roots, len(stats.Missing))
	fmt.Fprintf(out, "Images: %d\n", stats.Images)
	fmt.Fprintf(out, "Skipped: %d\n", stats.Skipped)
	fmt.Fprintf(out, "Products: %d\n", len(records))
	return 0
}

func printRecord(out io.Writer, rec *domain.ProductRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\n%s\t%s\n", rec.SKU, rec.Name)
	fmt.Fprintf(w, "  id\t%s\n", rec.ID)
	fmt.Fprintf(w, "  category\t%s / %s\n", rec.Category, rec.Subcategory)
	fmt.Fprintf(w, "  color\t%s (%s)\n", rec.ColorName, rec.ColorFamily)
	fmt.Fprintf(w, "  price\t%s (compare at %s, %s)\n", rec.BasePrice.StringFixed(2), rec.CompareAtPrice.StringFixed(2), rec.PriceTier)
	if rec.Hero != nil {
		fmt.Fprintf(w, "  hero\t%s\n", rec.Hero.CDNURL)
	}
	for _, img := range rec.Gallery {
		fmt.Fprintf(w, "  gallery\t%s\n", img.CDNURL)
	}
	fmt.Fprintf(w, "  keywords\t%s\n", strings.Join(rec.MetaKeywords, ", "))
	_ = w.Flush()
}
