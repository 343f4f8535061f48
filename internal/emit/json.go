package emit

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kctmenswear/catalog-importer/internal/domain"
)

// Product is the JSON document form of a catalog record.
type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	Handle          string           `json:"handle"`
	Slug            string           `json:"slug"`
	Season          string           `json:"season"`
	Collection      string           `json:"collection"`
	Category        string           `json:"category"`
	Subcategory     string           `json:"subcategory"`
	PriceTier       domain.PriceTier `json:"price_tier"`
	BasePrice       json.Number      `json:"base_price"`
	CompareAtPrice  json.Number      `json:"compare_at_price"`
	ColorName       string           `json:"color_name"`
	ColorFamily     string           `json:"color_family"`
	Materials       domain.Materials `json:"materials"`
	FitType         string           `json:"fit_type"`
	Images          ProductImages    `json:"images"`
	Description     string           `json:"description"`
	Status          string           `json:"status"`
	MetaTitle       string           `json:"meta_title"`
	MetaDescription string           `json:"meta_description"`
	MetaKeywords    []string         `json:"meta_keywords"`
	OGTitle         string           `json:"og_title"`
	OGDescription   string           `json:"og_description"`
	SearchTerms     string           `json:"search_terms"`
	URLSlug         string           `json:"url_slug"`
	IsIndexable     bool             `json:"is_indexable"`
	SitemapPriority json.Number      `json:"sitemap_priority"`
}

// ProductImages nests the hero and gallery images of a product.
type ProductImages struct {
	Hero    *ProductImage  `json:"hero"`
	Gallery []ProductImage `json:"gallery"`
}

// ProductImage is one image reference in a product document.
type ProductImage struct {
	URL  string           `json:"url"`
	Name string           `json:"name"`
	Role domain.ImageRole `json:"role,omitempty"`
}

// NewProduct converts a record to its JSON document form.
func NewProduct(rec *domain.ProductRecord) Product {
	images := ProductImages{Gallery: make([]ProductImage, 0, len(rec.Gallery))}
	if rec.Hero != nil {
		hero := productImage(*rec.Hero)
		images.Hero = &hero
	}
	for _, img := range rec.Gallery {
		images.Gallery = append(images.Gallery, productImage(img))
	}

	keywords := rec.MetaKeywords
	if keywords == nil {
		keywords = []string{}
	}

	return Product{
		ID:              rec.ID,
		Name:            rec.Name,
		SKU:             rec.SKU,
		Handle:          rec.Slug,
		Slug:            rec.Slug,
		Season:          rec.Season,
		Collection:      rec.Collection,
		Category:        rec.Category,
		Subcategory:     rec.Subcategory,
		PriceTier:       rec.PriceTier,
		BasePrice:       json.Number(rec.BasePrice.StringFixed(2)),
		CompareAtPrice:  json.Number(rec.CompareAtPrice.StringFixed(2)),
		ColorName:       rec.ColorName,
		ColorFamily:     rec.ColorFamily,
		Materials:       rec.Materials,
		FitType:         rec.FitType,
		Images:          images,
		Description:     rec.Description,
		Status:          rec.Status,
		MetaTitle:       rec.MetaTitle,
		MetaDescription: rec.MetaDescription,
		MetaKeywords:    keywords,
		OGTitle:         rec.OGTitle,
		OGDescription:   rec.OGDescription,
		SearchTerms:     rec.SearchTerms,
		URLSlug:         rec.Slug,
		IsIndexable:     rec.Indexable,
		SitemapPriority: json.Number(rec.SitemapPriority.String()),
	}
}

func productImage(img domain.ImageDescriptor) ProductImage {
	return ProductImage{URL: img.CDNURL, Name: img.ImageName, Role: img.Role}
}

// WriteProducts encodes records as an indented JSON array.
func WriteProducts(w io.Writer, records []*domain.ProductRecord) error {
	products := make([]Product, 0, len(records))
	for _, rec := range records {
		products = append(products, NewProduct(rec))
	}
	return encode(w, products)
}

// WriteIndex encodes idx as an indented JSON document.
func WriteIndex(w io.Writer, idx *domain.Index) error {
	return encode(w, idx)
}

// ReadIndex decodes an index document. Null category or product entries are
// rejected.
func ReadIndex(r io.Reader) (*domain.Index, error) {
	idx := domain.NewIndex("")
	if err := json.NewDecoder(r).Decode(idx); err != nil {
		return nil, err
	}
	if idx.Categories == nil {
		idx.Categories = make(map[string]map[string]*domain.ProductImages)
	}
	for _, category := range idx.CategoryNames() {
		products := idx.Categories[category]
		if products == nil {
			return nil, fmt.Errorf("category %q has no products object", category)
		}
		for _, product := range idx.ProductNames(category) {
			if products[product] == nil {
				return nil, fmt.Errorf("product %s/%s is null", category, product)
			}
		}
	}
	return idx, nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
