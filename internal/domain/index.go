package domain

import "sort"

// Index is the CDN index document produced by discovery and consumed by the exporter.
//
//	{ "base_url": "...", "categories": { "<category>": { "<product>": {...} } } }
type Index struct {
	BaseURL    string                               `json:"base_url"`
	Categories map[string]map[string]*ProductImages `json:"categories"`
}

// ProductImages is the per-product entry of an Index.
type ProductImages struct {
	ProductFolder string            `json:"product_folder"`
	Images        []ImageDescriptor `json:"images"`
}

// NewIndex creates an empty index.
func NewIndex(baseURL string) *Index {
	return &Index{
		BaseURL:    baseURL,
		Categories: make(map[string]map[string]*ProductImages),
	}
}

// Add appends an image to category/product, creating entries as needed.
func (idx *Index) Add(category, product string, img ImageDescriptor) {
	products, ok := idx.Categories[category]
	if !ok {
		products = make(map[string]*ProductImages)
		idx.Categories[category] = products
	}
	entry, ok := products[product]
	if !ok {
		entry = &ProductImages{ProductFolder: product}
		products[product] = entry
	}
	entry.Images = append(entry.Images, img)
}

// Merge folds other into idx. Products already present keep their images.
func (idx *Index) Merge(other *Index) {
	if idx.BaseURL == "" {
		idx.BaseURL = other.BaseURL
	}
	for category, products := range other.Categories {
		for product, entry := range products {
			if _, exists := idx.Categories[category][product]; exists {
				continue
			}
			for _, img := range entry.Images {
				idx.Add(category, product, img)
			}
		}
	}
}

// CategoryNames returns the category keys in sorted order.
func (idx *Index) CategoryNames() []string {
	names := make([]string, 0, len(idx.Categories))
	for name := range idx.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProductNames returns the product keys of category in sorted order.
func (idx *Index) ProductNames(category string) []string {
	products := idx.Categories[category]
	names := make([]string, 0, len(products))
	for name := range products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ImageCount returns the total number of images.
func (idx *Index) ImageCount() int {
	total := 0
	for _, products := range idx.Categories {
		for _, entry := range products {
			total += len(entry.Images)
		}
	}
	return total
}

// ProductCount returns the total number of products.
func (idx *Index) ProductCount() int {
	total := 0
	for _, products := range idx.Categories {
		total += len(products)
	}
	return total
}

// Empty reports whether the index has no products.
func (idx *Index) Empty() bool {
	return idx.ProductCount() == 0
}

// URLs returns every CDN URL in lexicographic order.
func (idx *Index) URLs() []string {
	var urls []string
	for _, products := range idx.Categories {
		for _, entry := range products {
			for _, img := range entry.Images {
				urls = append(urls, img.CDNURL)
			}
		}
	}
	sort.Strings(urls)
	return urls
}

// CategoryURLs returns the CDN URLs of one category in lexicographic order.
func (idx *Index) CategoryURLs(category string) []string {
	var urls []string
	for _, entry := range idx.Categories[category] {
		for _, img := range entry.Images {
			urls = append(urls, img.CDNURL)
		}
	}
	sort.Strings(urls)
	return urls
}
