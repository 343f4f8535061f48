package tables

import (
	"github.com/kctmenswear/catalog-importer/internal/color"
	"github.com/kctmenswear/catalog-importer/internal/domain"
	"github.com/kctmenswear/catalog-importer/internal/imagerole"
	"github.com/kctmenswear/catalog-importer/internal/normalize"
	"github.com/kctmenswear/catalog-importer/internal/pricing"
	"github.com/kctmenswear/catalog-importer/internal/rules"
)

// Collection keys used by the built-in categories.
const (
	CollectionFall2025    = "fall-2025"
	CollectionAccessories = "accessories"
)

// DefaultSpec returns a fresh copy of the built-in tables.
//
//nolint:funlen // Static table data
func DefaultSpec() Spec {
	return Spec{
		Extensions:   []string{".webp", ".jpg", ".jpeg", ".png"},
		GroupFolders: []string{"menswear-accessories"},
		Categories: []CategorySpec{
			apparel("double-breasted-suits", "Double-Breasted Suits", "449.99"),
			apparel("suits", "Suits", "399.99"),
			apparel("stretch-suits", "Stretch Suits", "399.99"),
			apparel("tuxedos", "Tuxedos", "499.99"),
			apparel("mens-shirts", "Mens Shirts", "79.99"),
			accessory("vest-tie-set", "Vest Sets", "ACC-VTS", "XS-6XL"),
			accessory("suspender-bowtie-set", "Suspender Sets", "ACC-SBS", "One Size"),
		},
		Fallback: FallbackSpec{
			Subcategory:     "Premium Collection",
			BasePrice:       "399.99",
			CompareAtOffset: "150",
			SKUSeries:       "F25",
			FitType:         "Modern Fit",
			Collection:      CollectionFall2025,
		},
		Collections: []CollectionSpec{
			{
				Key:             CollectionFall2025,
				Title:           "Complete Fall 2025 Collection Import",
				Season:          "Fall 2025",
				Name:            "Fall 2025 Collection",
				Status:          "active",
				Indexable:       true,
				SitemapPriority: "0.8",
				Materials: []domain.Material{
					{Part: "primary", Value: "Premium Wool Blend"},
					{Part: "lining", Value: "Viscose"},
				},
				Text: TextSpec{
					Description:     "Premium {{.Name}} from our {{.Collection}}. Expertly tailored with attention to detail.",
					MetaTitle:       "{{.Name}} | {{.Category}} | KCT Menswear",
					MetaDescription: "Shop {{.Name}} at ${{.Price}}. {{.Collection}}. Free shipping.",
					MetaKeywords:    []string{"{{lower .Category}}", "{{lower .ColorName}}", "{{lower .Season}}", "menswear"},
					OGTitle:         "{{.Name}} - {{.Season}}",
					OGDescription:   "Elegant {{.Name}} perfect for formal occasions.",
					SearchTerms:     "{{.Slug}} {{lower .Category}} {{lower .ColorName}} formal",
				},
			},
			{
				Key:             CollectionAccessories,
				Title:           "Complete Accessories Collection Import",
				Season:          "All Season",
				Name:            "Accessories Collection",
				Status:          "active",
				Indexable:       true,
				SitemapPriority: "0.7",
				Materials: []domain.Material{
					{Part: "primary", Value: "Premium Microfiber"},
					{Part: "hardware", Value: "Metal"},
				},
				Text: TextSpec{
					Description:     "Elegant {{.Name}} perfect for weddings, proms, and formal events. Premium quality accessories.",
					MetaTitle:       "{{.Name}} | Formal Accessories | KCT Menswear",
					MetaDescription: "Shop {{.Name}} at ${{.Price}}. Perfect for formal events. Same-day shipping.",
					MetaKeywords:    []string{"accessories", "{{lower .Subcategory}}", "{{lower .ColorName}}", "formal", "wedding"},
					OGTitle:         "{{.Name}} - Premium Accessories",
					OGDescription:   "Premium {{.Name}} for formal occasions.",
					SearchTerms:     "{{.Slug}} accessories formal wedding",
				},
			},
		},
		ColorKeywords: []color.Entry{
			{Keyword: "black", Label: "Black"},
			{Keyword: "white", Label: "White"},
			{Keyword: "grey", Label: "Grey"},
			{Keyword: "gray", Label: "Grey"},
			{Keyword: "navy", Label: "Navy"},
			{Keyword: "blue", Label: "Blue"},
			{Keyword: "red", Label: "Red"},
			{Keyword: "pink", Label: "Pink"},
			{Keyword: "green", Label: "Green"},
			{Keyword: "brown", Label: "Brown"},
			{Keyword: "tan", Label: "Tan"},
			{Keyword: "beige", Label: "Beige"},
			{Keyword: "burgundy", Label: "Burgundy"},
			{Keyword: "purple", Label: "Purple"},
			{Keyword: "gold", Label: "Gold"},
			{Keyword: "silver", Label: "Silver"},
			{Keyword: "orange", Label: "Orange"},
			{Keyword: "yellow", Label: "Yellow"},
			{Keyword: "mocha", Label: "Mocha"},
			{Keyword: "sage", Label: "Sage"},
			{Keyword: "forest", Label: "Forest"},
			{Keyword: "smoked", Label: "Smoked"},
			{Keyword: "canyon", Label: "Canyon"},
			{Keyword: "clay", Label: "Clay"},
			{Keyword: "sparkle", Label: "Sparkle"},
			{Keyword: "dusty", Label: "Dusty"},
			{Keyword: "rose", Label: "Rose"},
			{Keyword: "fuchsia", Label: "Fuchsia"},
			{Keyword: "hunter", Label: "Hunter"},
			{Keyword: "burnt", Label: "Burnt"},
			{Keyword: "medium", Label: "Medium"},
			{Keyword: "dark", Label: "Dark"},
			{Keyword: "light", Label: "Light"},
		},
		ColorFamilies: []color.Entry{
			{Keyword: "Black", Label: "Black"},
			{Keyword: "Dark", Label: "Black"},
			{Keyword: "White", Label: "White"},
			{Keyword: "Ivory", Label: "White"},
			{Keyword: "Grey", Label: "Grey"},
			{Keyword: "Gray", Label: "Grey"},
			{Keyword: "Silver", Label: "Grey"},
			{Keyword: "Navy", Label: "Blue"},
			{Keyword: "Blue", Label: "Blue"},
			{Keyword: "Smoked Blue", Label: "Blue"},
			{Keyword: "Red", Label: "Red"},
			{Keyword: "Burgundy", Label: "Red"},
			{Keyword: "Rose", Label: "Red"},
			{Keyword: "Pink", Label: "Pink"},
			{Keyword: "Fuchsia", Label: "Pink"},
			{Keyword: "Dusty Rose", Label: "Pink"},
			{Keyword: "Green", Label: "Green"},
			{Keyword: "Forest", Label: "Green"},
			{Keyword: "Sage", Label: "Green"},
			{Keyword: "Hunter", Label: "Green"},
			{Keyword: "Brown", Label: "Brown"},
			{Keyword: "Mocha", Label: "Brown"},
			{Keyword: "Tan", Label: "Brown"},
			{Keyword: "Canyon", Label: "Brown"},
			{Keyword: "Clay", Label: "Brown"},
			{Keyword: "Orange", Label: "Orange"},
			{Keyword: "Burnt Orange", Label: "Orange"},
			{Keyword: "Yellow", Label: "Yellow"},
			{Keyword: "Gold", Label: "Yellow"},
			{Keyword: "Purple", Label: "Purple"},
		},
		PriceBreakpoints: append([]string(nil), pricing.DefaultBreakpoints...),
		Profiles: map[domain.ProductKind]imagerole.ProfileSpec{
			domain.KindApparel: {
				Rules: []rules.Spec{
					{Match: rules.MatchPrefix, Pattern: "main.", Label: string(domain.RoleMain)},
					{Match: rules.MatchContains, Pattern: "main", Label: string(domain.RoleHero)},
					{Match: rules.MatchContains, Pattern: "lifestyle", Label: string(domain.RoleHero)},
					{Match: rules.MatchAny, Label: string(domain.RoleGallery)},
				},
				HeroPriority: []domain.ImageRole{domain.RoleMain, domain.RoleHero},
				GalleryCap:   3,
			},
			domain.KindAccessory: {
				Rules: []rules.Spec{
					{Match: rules.MatchPrefix, Pattern: "main.", Label: string(domain.RoleMain)},
					{Match: rules.MatchPrefix, Pattern: "model.", Label: string(domain.RoleModel)},
					{Match: rules.MatchPrefix, Pattern: "vest.", Label: string(domain.RoleVest)},
					{Match: rules.MatchPrefix, Pattern: "product.", Label: string(domain.RoleProduct)},
					{Match: rules.MatchContains, Pattern: "model", Label: string(domain.RoleModelVariant)},
					{Match: rules.MatchSuffix, Pattern: ".jpg", Label: string(domain.RoleProductVariant)},
					{Match: rules.MatchAny, Label: string(domain.RoleUnknown)},
				},
				HeroPriority: []domain.ImageRole{domain.RoleMain, domain.RoleModel, domain.RoleModelVariant},
				GalleryCap:   2,
			},
		},
		NameReplacements: []normalize.Replacement{
			{From: "Mens", To: "Men's"},
		},
	}
}

func apparel(folder, name, price string) CategorySpec {
	return CategorySpec{
		Folder:          folder,
		Name:            name,
		Subcategory:     "Premium Collection",
		Kind:            domain.KindApparel,
		BasePrice:       price,
		CompareAtOffset: "150",
		SKUPrefix:       skuPrefix("F25", folder),
		FitType:         "Modern Fit",
		Collection:      CollectionFall2025,
	}
}

func accessory(folder, subcategory, prefix, fit string) CategorySpec {
	return CategorySpec{
		Folder:          folder,
		Name:            "Accessories",
		Subcategory:     subcategory,
		Kind:            domain.KindAccessory,
		BasePrice:       "49.99",
		CompareAtOffset: "30",
		SKUPrefix:       prefix,
		FitType:         fit,
		CDNPrefix:       "menswear-accessories",
		Collection:      CollectionAccessories,
	}
}
