package scanner

import (
	"sort"

	"github.com/kctmenswear/catalog-importer/internal/domain"
)

// IndexDiff lists what changed between two discovery passes.
type IndexDiff struct {
	AddedProducts   []string
	RemovedProducts []string
	AddedImages     []string
	RemovedImages   []string
}

// Empty reports whether nothing changed.
func (d IndexDiff) Empty() bool {
	return len(d.AddedProducts) == 0 && len(d.RemovedProducts) == 0 &&
		len(d.AddedImages) == 0 && len(d.RemovedImages) == 0
}

// Diff compares a previous index against the next one. Products are keyed
// "category/product" and images by CDN URL. A nil previous index means
// everything in next is new.
func Diff(previous, next *domain.Index) IndexDiff {
	prevProducts, prevImages := flatten(previous)
	nextProducts, nextImages := flatten(next)

	return IndexDiff{
		AddedProducts:   missingFrom(nextProducts, prevProducts),
		RemovedProducts: missingFrom(prevProducts, nextProducts),
		AddedImages:     missingFrom(nextImages, prevImages),
		RemovedImages:   missingFrom(prevImages, nextImages),
	}
}

func flatten(idx *domain.Index) (products, images map[string]bool) {
	products = make(map[string]bool)
	images = make(map[string]bool)
	if idx == nil {
		return products, images
	}
	for category, entries := range idx.Categories {
		for product, entry := range entries {
			products[category+"/"+product] = true
			for _, img := range entry.Images {
				images[img.CDNURL] = true
			}
		}
	}
	return products, images
}

// missingFrom returns the sorted keys of a that are absent from b.
func missingFrom(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
