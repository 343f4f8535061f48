package service

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kctmenswear/catalog-importer/internal/domain"
)

const (
	rule         = "================================================================================"
	exampleCount = 10
)

// SummaryTitle derives the report heading from the catalog roots,
// e.g. "/images/Fall 2025" → "FALL 2025".
func SummaryTitle(roots []string) string {
	if len(roots) != 1 {
		return "CATALOG"
	}
	return strings.ToUpper(filepath.Base(roots[0]))
}

// WriteSummary prints per-category and per-product image counts followed by
// the written files and a sample of URLs.
func WriteSummary(w io.Writer, title string, res *IndexResult) {
	idx := res.Index

	fmt.Fprintf(w, "\n%s\n%s CDN URLs SUMMARY\n%s\n", rule, title, rule)

	for _, category := range idx.CategoryNames() {
		products := idx.Categories[category]
		count := 0
		for _, p := range products {
			count += len(p.Images)
		}
		label := strings.ToUpper(strings.ReplaceAll(category, "-", " "))
		fmt.Fprintf(w, "\n%s: %d images across %d products\n", label, count, len(products))

		for _, name := range idx.ProductNames(category) {
			images := products[name].Images
			if roles := roleSummary(images); roles != "" {
				fmt.Fprintf(w, "  %s: %d images (%s)\n", name, len(images), roles)
			} else {
				fmt.Fprintf(w, "  %s: %d images\n", name, len(images))
			}
		}
	}

	fmt.Fprintf(w, "\nTOTAL IMAGES: %d\n", idx.ImageCount())
	for _, path := range res.Written {
		fmt.Fprintf(w, "Saved: %s\n", path)
	}

	urls := idx.URLs()
	if len(urls) == 0 {
		return
	}
	fmt.Fprintf(w, "\nFirst %d CDN URLs (examples):\n", min(exampleCount, len(urls)))
	for i, u := range urls[:min(exampleCount, len(urls))] {
		fmt.Fprintf(w, "  %d. %s\n", i+1, u)
	}
	if len(urls) > exampleCount {
		fmt.Fprintf(w, "  ... and %d more URLs\n", len(urls)-exampleCount)
	}
}

// roleSummary lists the distinct image roles, sorted. Empty when no image has one.
func roleSummary(images []domain.ImageDescriptor) string {
	seen := make(map[string]bool)
	for _, img := range images {
		if img.Role != "" {
			seen[string(img.Role)] = true
		}
	}
	roles := make([]string, 0, len(seen))
	for r := range seen {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return strings.Join(roles, ", ")
}
