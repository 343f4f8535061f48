// Package domain holds the catalog types shared by discovery, inference and emission.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ImageRole classifies an image within its product folder.
type ImageRole string

// ImageRole constants.
const (
	RoleHero           ImageRole = "hero"
	RoleGallery        ImageRole = "gallery"
	RoleMain           ImageRole = "main"
	RoleModel          ImageRole = "model"
	RoleVest           ImageRole = "vest"
	RoleProduct        ImageRole = "product"
	RoleModelVariant   ImageRole = "model_variant"
	RoleProductVariant ImageRole = "product_variant"
	RoleUnknown        ImageRole = "unknown"
)

// Valid reports whether r is one of the known roles.
func (r ImageRole) Valid() bool {
	switch r {
	case RoleHero, RoleGallery, RoleMain, RoleModel, RoleVest, RoleProduct,
		RoleModelVariant, RoleProductVariant, RoleUnknown:
		return true
	}
	return false
}

// ProductKind selects classification rules, hero priority and gallery caps.
type ProductKind string

// ProductKind constants.
const (
	KindApparel   ProductKind = "apparel"
	KindAccessory ProductKind = "accessory"
)

// ImageDescriptor is one discovered image. Treat as immutable once created.
type ImageDescriptor struct {
	ImageName string    `json:"image_name"`
	Role      ImageRole `json:"image_type,omitempty"`
	LocalPath string    `json:"local_path"`
	CDNURL    string    `json:"cdn_url"`
}

// PriceTier is a 1-based pricing bucket.
type PriceTier int

// String renders the tier label, e.g. TIER_3.
func (t PriceTier) String() string {
	return fmt.Sprintf("TIER_%d", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t PriceTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Material is one named component of a product's materials blob.
type Material struct {
	Part  string `json:"part" yaml:"part" validate:"required"`
	Value string `json:"value" yaml:"value" validate:"required"`
}

// Materials keeps insertion order when encoded as a JSON object.
type Materials []Material

// ProductRecord is the inferred catalog entry for one product folder.
// Fields are computed once by the catalog builder and not mutated afterwards.
type ProductRecord struct {
	ID              string
	Slug            string
	Name            string
	CategorySlug    string
	Category        string
	Subcategory     string
	SKU             string
	ColorName       string
	ColorFamily     string
	PriceTier       PriceTier
	BasePrice       decimal.Decimal
	CompareAtPrice  decimal.Decimal
	Kind            ProductKind
	Season          string
	Collection      string
	CollectionKey   string
	FitType         string
	Materials       Materials
	Images          []ImageDescriptor
	Hero            *ImageDescriptor
	Gallery         []ImageDescriptor
	Description     string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string
	OGTitle         string
	OGDescription   string
	SearchTerms     string
	SitemapPriority decimal.Decimal
	Status          string
	Indexable       bool
}

// Section is a titled run of records emitted together.
type Section struct {
	Title   string
	Records []*ProductRecord
}

// Key is the stable identity of a product across runs.
func (p *ProductRecord) Key() string {
	return p.CategorySlug + "/" + p.Slug
}
