package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kctmenswear/catalog-importer/internal/domain"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
)

func TestDefault_Categories(t *testing.T) {
	tb := Default()

	tests := []struct {
		folder    string
		name      string
		price     string
		compare   string
		prefix    string
		kind      domain.ProductKind
		cdnPrefix string
	}{
		{"suits", "Suits", "399.99", "549.99", "F25-SUI", domain.KindApparel, ""},
		{"stretch-suits", "Stretch Suits", "399.99", "549.99", "F25-STR", domain.KindApparel, ""},
		{"double-breasted-suits", "Double-Breasted Suits", "449.99", "599.99", "F25-DOU", domain.KindApparel, ""},
		{"tuxedos", "Tuxedos", "499.99", "649.99", "F25-TUX", domain.KindApparel, ""},
		{"mens-shirts", "Mens Shirts", "79.99", "229.99", "F25-MEN", domain.KindApparel, ""},
		{"vest-tie-set", "Accessories", "49.99", "79.99", "ACC-VTS", domain.KindAccessory, "menswear-accessories"},
		{"suspender-bowtie-set", "Accessories", "49.99", "79.99", "ACC-SBS", domain.KindAccessory, "menswear-accessories"},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			c := tb.Category(tt.folder)
			assert.False(t, c.Derived)
			assert.Equal(t, tt.name, c.Name)
			assert.True(t, decimal.RequireFromString(tt.price).Equal(c.BasePrice), "base price %s", c.BasePrice)
			assert.True(t, decimal.RequireFromString(tt.compare).Equal(c.CompareAtPrice), "compare-at %s", c.CompareAtPrice)
			assert.Equal(t, tt.prefix, c.SKUPrefix)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.cdnPrefix, c.CDNPrefix)
		})
	}
}

func TestCategory_FallbackForUnknownFolder(t *testing.T) {
	tb := Default()

	c := tb.Category("velvet-blazers")

	assert.True(t, c.Derived)
	assert.False(t, tb.Known("velvet-blazers"))
	assert.Equal(t, "Velvet Blazers", c.Name)
	assert.Equal(t, "F25-VEL", c.SKUPrefix)
	assert.Equal(t, "399.99", c.BasePrice.StringFixed(2))
	assert.Equal(t, domain.KindApparel, c.Kind)
	assert.Equal(t, CollectionFall2025, c.Collection)
}

func TestCollection_Render(t *testing.T) {
	tb := Default()
	coll, ok := tb.Collection(CollectionFall2025)
	require.True(t, ok)

	text, err := coll.Render(TextData{
		Name:        "Classic Navy Suit",
		Slug:        "classic-navy-suit",
		Category:    "Suits",
		Subcategory: "Premium Collection",
		ColorName:   "Navy",
		Price:       "399.99",
		Season:      coll.Season,
		Collection:  coll.Name,
	})
	require.NoError(t, err)

	assert.Equal(t, "Premium Classic Navy Suit from our Fall 2025 Collection. Expertly tailored with attention to detail.", text.Description)
	assert.Equal(t, "Classic Navy Suit | Suits | KCT Menswear", text.MetaTitle)
	assert.Equal(t, "Shop Classic Navy Suit at $399.99. Fall 2025 Collection. Free shipping.", text.MetaDescription)
	assert.Equal(t, []string{"suits", "navy", "fall 2025", "menswear"}, text.MetaKeywords)
	assert.Equal(t, "Classic Navy Suit - Fall 2025", text.OGTitle)
	assert.Equal(t, "classic-navy-suit suits navy formal", text.SearchTerms)
}

func TestDefault_Profiles(t *testing.T) {
	tb := Default()

	apparel, ok := tb.Profile(domain.KindApparel)
	require.True(t, ok)
	assert.Equal(t, 3, apparel.GalleryCap)

	accessory, ok := tb.Profile(domain.KindAccessory)
	require.True(t, ok)
	assert.Equal(t, 2, accessory.GalleryCap)
	assert.Equal(t, domain.RoleProductVariant, accessory.Classify("side.jpg"))
}

func TestDefault_Extras(t *testing.T) {
	tb := Default()

	assert.True(t, tb.IsGroupFolder("menswear-accessories"))
	assert.False(t, tb.IsGroupFolder("suits"))
	assert.Equal(t, "Men's Shirts", tb.Replacer.Apply("Mens Shirts"))
	assert.Equal(t, 10, tb.Tiers.Count())
	assert.Contains(t, tb.Extensions, ".webp")
}

func TestLoad_OverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
price_breakpoints: ["100", "200"]
color_keywords:
  - keyword: ivory
    label: Ivory
`), 0o644))

	tb, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, tb.Tiers.Count())
	assert.Equal(t, "Ivory", tb.Colors.Name("Ivory Suit"))
	assert.Equal(t, "Classic", tb.Colors.Name("Navy Suit"), "keyword table replaced")
	assert.True(t, tb.Known("suits"), "categories kept from defaults")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown key", "colour_keywords: []\n", domainerrors.ErrValidation},
		{"bad breakpoint order", `price_breakpoints: ["200", "100"]` + "\n", domainerrors.ErrValidation},
		{"non numeric price", "categories:\n  - {folder: suits, name: Suits, kind: apparel, base_price: lots, sku_prefix: X, collection: fall-2025}\n", domainerrors.ErrValidation},
		{"unknown collection", "categories:\n  - {folder: suits, name: Suits, kind: apparel, base_price: '1', sku_prefix: X, collection: spring}\n", domainerrors.ErrValidation},
		{"bad template", "collections:\n  - {key: fall-2025, title: T, season: S, name: N, status: active, sitemap_priority: '0.5', text: {description: '{{.Nope', meta_title: a, meta_description: b, og_title: c, og_description: d, search_terms: e}}\n", domainerrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	tb, err := Load("")
	require.NoError(t, err)
	assert.True(t, tb.Known("tuxedos"))
}
