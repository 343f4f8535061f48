// Package scanner discovers product images on disk and builds the CDN index.
//
// The expected layout is <root>/<category>/<product>/<image>. Grouping folders
// such as "menswear-accessories" may precede the category and a category
// folder nested inside itself ("mens-shirts/mens-shirts") is flattened.
package scanner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kctmenswear/catalog-importer/internal/domain"
	"github.com/kctmenswear/catalog-importer/internal/tables"
)

// Stats summarizes one discovery pass.
type Stats struct {
	Roots   int
	Files   int
	Images  int
	Skipped int
	Missing []string
}

// Discoverer turns image trees into a domain.Index.
type Discoverer struct {
	walker *Walker
	tables *tables.Tables
	logger *slog.Logger
}

// NewDiscoverer creates a discoverer using the extensions and group folders of t.
func NewDiscoverer(t *tables.Tables, logger *slog.Logger) *Discoverer {
	return &Discoverer{
		walker: NewWalker(logger, t.Extensions),
		tables: t,
		logger: logger,
	}
}

// Discover walks every root and merges the results into one index.
// A missing root contributes nothing and is reported in Stats.Missing.
func (d *Discoverer) Discover(ctx context.Context, baseURL string, roots ...string) (*domain.Index, Stats, error) {
	idx := domain.NewIndex(strings.TrimRight(baseURL, "/"))
	stats := Stats{Roots: len(roots)}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			d.logger.Warn("catalog root not found, skipping", "root", root)
			stats.Missing = append(stats.Missing, root)
			continue
		}

		for res := range d.walker.Walk(ctx, root) {
			stats.Files++
			category, product, image, ok := d.classify(res.RelPath)
			if !ok {
				stats.Skipped++
				d.logger.Debug("skipping path outside category/product/image layout", "path", res.RelPath)
				continue
			}
			idx.Add(category, product, d.describe(idx.BaseURL, category, product, image, res.Path))
			stats.Images++
		}

		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
	}

	sortImages(idx)
	return idx, stats, nil
}

// classify maps a root-relative path to its category, product and image segments.
func (d *Discoverer) classify(relPath string) (category, product, image string, ok bool) {
	parts := strings.Split(filepath.ToSlash(relPath), "/")

	for len(parts) > 0 && d.tables.IsGroupFolder(parts[0]) {
		parts = parts[1:]
	}
	for len(parts) > 3 && parts[0] == parts[1] {
		parts = parts[1:]
	}

	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func (d *Discoverer) describe(baseURL, category, product, image, localPath string) domain.ImageDescriptor {
	cat := d.tables.Category(category)

	img := domain.ImageDescriptor{
		ImageName: image,
		LocalPath: filepath.ToSlash(localPath),
		CDNURL:    CDNURL(baseURL, cat.CDNPrefix, category, product, image),
	}
	if cat.Kind == domain.KindAccessory {
		if profile, ok := d.tables.Profile(cat.Kind); ok {
			img.Role = profile.Classify(image)
		}
	}
	return img
}

// CDNURL builds {base}/[{prefix}/]{category}/{product}/{image}.
func CDNURL(baseURL, prefix, category, product, image string) string {
	segments := make([]string, 0, 5)
	segments = append(segments, strings.TrimRight(baseURL, "/"))
	if prefix != "" {
		segments = append(segments, strings.Trim(prefix, "/"))
	}
	segments = append(segments, category, product, image)
	return strings.Join(segments, "/")
}

func sortImages(idx *domain.Index) {
	for _, products := range idx.Categories {
		for _, entry := range products {
			sort.SliceStable(entry.Images, func(i, j int) bool {
				return entry.Images[i].ImageName < entry.Images[j].ImageName
			})
		}
	}
}
