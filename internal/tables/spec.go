// Package tables holds the lookup data that drives inference: category
// mappings, colour keywords, price breakpoints, image role profiles and
// collection text templates. The built-in defaults reproduce the Fall 2025
// and accessories catalogs; a YAML file can replace any section.
package tables

import (
	"github.com/kctmenswear/catalog-importer/internal/color"
	"github.com/kctmenswear/catalog-importer/internal/domain"
	"github.com/kctmenswear/catalog-importer/internal/imagerole"
	"github.com/kctmenswear/catalog-importer/internal/normalize"
)

// Spec is the serialized table document.
type Spec struct {
	Extensions       []string                                     `yaml:"extensions" validate:"required,min=1,dive,startswith=."`
	GroupFolders     []string                                     `yaml:"group_folders" validate:"dive,required,excludesall=/"`
	Categories       []CategorySpec                               `yaml:"categories" validate:"required,min=1,dive"`
	Fallback         FallbackSpec                                 `yaml:"fallback"`
	Collections      []CollectionSpec                             `yaml:"collections" validate:"required,min=1,dive"`
	ColorKeywords    []color.Entry                                `yaml:"color_keywords" validate:"required,min=1,dive"`
	ColorFamilies    []color.Entry                                `yaml:"color_families" validate:"required,min=1,dive"`
	PriceBreakpoints []string                                     `yaml:"price_breakpoints" validate:"required,min=1,dive,numeric"`
	Profiles         map[domain.ProductKind]imagerole.ProfileSpec `yaml:"profiles" validate:"required,min=1,dive"`
	NameReplacements []normalize.Replacement                      `yaml:"name_replacements" validate:"dive"`
}

// CategorySpec maps one category folder to its catalog attributes.
type CategorySpec struct {
	Folder          string             `yaml:"folder" validate:"required,excludesall=/"`
	Name            string             `yaml:"name" validate:"required"`
	Subcategory     string             `yaml:"subcategory"`
	Kind            domain.ProductKind `yaml:"kind" validate:"required,oneof=apparel accessory"`
	BasePrice       string             `yaml:"base_price" validate:"required,numeric"`
	CompareAtOffset string             `yaml:"compare_at_offset" validate:"omitempty,numeric"`
	SKUPrefix       string             `yaml:"sku_prefix" validate:"required"`
	FitType         string             `yaml:"fit_type"`
	CDNPrefix       string             `yaml:"cdn_prefix"`
	Collection      string             `yaml:"collection" validate:"required"`
}

// FallbackSpec derives a mapping for category folders missing from Categories.
type FallbackSpec struct {
	Subcategory     string `yaml:"subcategory"`
	BasePrice       string `yaml:"base_price" validate:"required,numeric"`
	CompareAtOffset string `yaml:"compare_at_offset" validate:"omitempty,numeric"`
	SKUSeries       string `yaml:"sku_series" validate:"required"`
	FitType         string `yaml:"fit_type"`
	Collection      string `yaml:"collection" validate:"required"`
}

// CollectionSpec carries the season-level constants and text templates.
// Templates use text/template syntax over catalog.TextData.
type CollectionSpec struct {
	Key             string            `yaml:"key" validate:"required"`
	Title           string            `yaml:"title" validate:"required"`
	Season          string            `yaml:"season" validate:"required"`
	Name            string            `yaml:"name" validate:"required"`
	Status          string            `yaml:"status" validate:"required"`
	Indexable       bool              `yaml:"indexable"`
	SitemapPriority string            `yaml:"sitemap_priority" validate:"required,numeric"`
	Materials       []domain.Material `yaml:"materials" validate:"dive"`
	Text            TextSpec          `yaml:"text"`
}

// TextSpec holds the templates for description and SEO fields.
type TextSpec struct {
	Description     string   `yaml:"description" validate:"required"`
	MetaTitle       string   `yaml:"meta_title" validate:"required"`
	MetaDescription string   `yaml:"meta_description" validate:"required"`
	MetaKeywords    []string `yaml:"meta_keywords" validate:"dive,required"`
	OGTitle         string   `yaml:"og_title" validate:"required"`
	OGDescription   string   `yaml:"og_description" validate:"required"`
	SearchTerms     string   `yaml:"search_terms" validate:"required"`
}
