// Package service runs the catalog pipelines shared by the commands: indexing
// image roots and exporting catalog records.
package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kctmenswear/catalog-importer/internal/config"
	"github.com/kctmenswear/catalog-importer/internal/domain"
	"github.com/kctmenswear/catalog-importer/internal/emit"
	"github.com/kctmenswear/catalog-importer/internal/id"
	"github.com/kctmenswear/catalog-importer/internal/scanner"
)

// IndexService discovers images under the catalog roots and writes the CDN
// index document and URL lists.
type IndexService struct {
	discoverer *scanner.Discoverer
	catalog    config.CatalogConfig
	outputDir  string
	logger     *slog.Logger
}

// IndexResult describes one indexing run.
type IndexResult struct {
	RunID    string
	Index    *domain.Index
	Stats    scanner.Stats
	Written  []string
	Duration time.Duration
}

// NewIndexService creates a new index service.
func NewIndexService(discoverer *scanner.Discoverer, catalog config.CatalogConfig, outputDir string, logger *slog.Logger) *IndexService {
	return &IndexService{
		discoverer: discoverer,
		catalog:    catalog,
		outputDir:  outputDir,
		logger:     logger,
	}
}

// Run discovers every root and writes the outputs. An empty catalog is
// reported with a warning and writes nothing.
func (s *IndexService) Run(ctx context.Context) (*IndexResult, error) {
	start := time.Now()
	runID := id.MustGenerate("idx")
	log := s.logger.With("run", runID)

	idx, stats, err := s.discoverer.Discover(ctx, s.catalog.BaseURL, s.catalog.Roots...)
	if err != nil {
		return nil, err
	}

	result := &IndexResult{RunID: runID, Index: idx, Stats: stats}
	if idx.Empty() {
		log.Warn("no product images found, nothing written", "roots", s.catalog.Roots, "missing_roots", stats.Missing)
		result.Duration = time.Since(start)
		return result, nil
	}

	result.Written, err = s.write(idx)
	if err != nil {
		return nil, err
	}
	result.Duration = time.Since(start)

	log.Info("index written",
		"products", idx.ProductCount(),
		"images", idx.ImageCount(),
		"files", len(result.Written),
		"duration", result.Duration,
	)
	return result, nil
}

func (s *IndexService) write(idx *domain.Index) ([]string, error) {
	var written []string

	indexPath := filepath.Join(s.outputDir, emit.IndexFile)
	if err := emit.WriteFile(indexPath, func(w io.Writer) error {
		return emit.WriteIndex(w, idx)
	}); err != nil {
		return written, err
	}
	written = append(written, indexPath)

	allPath := filepath.Join(s.outputDir, emit.AllURLsFile)
	if err := emit.WriteFile(allPath, func(w io.Writer) error {
		return emit.WriteURLs(w, idx.URLs())
	}); err != nil {
		return written, err
	}
	written = append(written, allPath)

	for _, category := range idx.CategoryNames() {
		path := filepath.Join(s.outputDir, emit.CategoryURLsFile(category))
		urls := idx.CategoryURLs(category)
		if err := emit.WriteFile(path, func(w io.Writer) error {
			return emit.WriteURLs(w, urls)
		}); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}
