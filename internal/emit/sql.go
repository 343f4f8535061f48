package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kctmenswear/catalog-importer/internal/domain"
)

// Table is the target table of generated statements.
const Table = "products_enhanced"

// Columns is the fixed column list of every INSERT, in value order.
//
//nolint:gochecknoglobals // Fixed schema
var Columns = []string{
	"id", "name", "sku", "handle", "slug", "style_code", "season", "collection",
	"category", "subcategory", "price_tier", "base_price", "compare_at_price",
	"color_name", "color_family", "materials", "fit_type", "images", "description",
	"status", "meta_title", "meta_description", "meta_keywords", "og_title",
	"og_description", "search_terms", "url_slug", "is_indexable", "sitemap_priority",
	"created_at", "updated_at",
}

// columnLines is how many columns each line of the INSERT header carries.
//
//nolint:gochecknoglobals // Fixed schema
var columnLines = []int{8, 5, 6, 5, 5, 2}

// SQLOptions controls SQL rendering.
type SQLOptions struct {
	// Upsert appends ON CONFLICT (handle) DO UPDATE to every INSERT.
	Upsert bool
	// RunID is written into the file header when set.
	RunID string
	// Verify appends the per-category verification query.
	Verify bool
}

// SQLWriter renders records as INSERT statements.
type SQLWriter struct {
	opts SQLOptions
}

// NewSQLWriter creates a writer.
func NewSQLWriter(opts SQLOptions) *SQLWriter {
	return &SQLWriter{opts: opts}
}

// Write renders every section followed by the optional verification query.
func (w *SQLWriter) Write(out io.Writer, sections []domain.Section) error {
	var b bytes.Buffer

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "-- %s\n", section.Title)
		b.WriteString("-- Auto-generated from JSON data\n")
		if w.opts.RunID != "" {
			fmt.Fprintf(&b, "-- Run: %s\n", w.opts.RunID)
		}

		category := ""
		for _, rec := range section.Records {
			if rec.CategorySlug != category {
				category = rec.CategorySlug
				fmt.Fprintf(&b, "\n-- %s (%s)\n", rec.Category, category)
			}
			stmt, err := w.Statement(rec)
			if err != nil {
				return fmt.Errorf("%s: %w", rec.Key(), err)
			}
			b.WriteString(stmt)
		}
	}

	if w.opts.Verify {
		b.WriteString(VerifyQuery(sections))
	}

	_, err := out.Write(b.Bytes())
	return err
}

// Statement renders a single INSERT (or upsert) for rec.
func (w *SQLWriter) Statement(rec *domain.ProductRecord) (string, error) {
	values, err := Values(rec)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("\nINSERT INTO " + Table + " (\n")
	rest := Columns
	for _, n := range columnLines {
		line := rest[:n]
		rest = rest[n:]
		b.WriteString("    " + strings.Join(line, ", "))
		if len(rest) > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(") VALUES (\n")
	for i, v := range values {
		b.WriteString("    " + v)
		if i < len(values)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	if w.opts.Upsert {
		b.WriteString("\n" + upsertClause())
	}
	b.WriteString(";\n")
	return b.String(), nil
}

// Values renders the literal of every column in Columns order.
func Values(rec *domain.ProductRecord) ([]string, error) {
	materials, err := compactJSON(rec.Materials)
	if err != nil {
		return nil, fmt.Errorf("encode materials: %w", err)
	}
	images, err := compactJSON(sqlImages(rec))
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	return []string{
		Quote(rec.ID),
		Quote(rec.Name),
		Quote(rec.SKU),
		Quote(rec.Slug),
		Quote(rec.Slug),
		Quote(rec.SKU),
		Quote(rec.Season),
		Quote(rec.Collection),
		Quote(rec.Category),
		Quote(rec.Subcategory),
		Quote(rec.PriceTier.String()),
		rec.BasePrice.StringFixed(2),
		rec.CompareAtPrice.StringFixed(2),
		Quote(rec.ColorName),
		Quote(rec.ColorFamily),
		Quote(materials),
		Quote(rec.FitType),
		Quote(images),
		Quote(rec.Description),
		Quote(rec.Status),
		Quote(rec.MetaTitle),
		Quote(rec.MetaDescription),
		QuoteArray(rec.MetaKeywords),
		Quote(rec.OGTitle),
		Quote(rec.OGDescription),
		Quote(rec.SearchTerms),
		Quote(rec.Slug),
		Bool(rec.Indexable),
		rec.SitemapPriority.String(),
		"NOW()",
		"NOW()",
	}, nil
}

// upsertClause updates every column except the keys and created_at.
// An existing non-empty SKU is kept.
func upsertClause() string {
	var sets []string
	for _, col := range Columns {
		switch col {
		case "id", "handle", "created_at":
			continue
		case "sku":
			sets = append(sets, "sku = CASE WHEN "+Table+".sku IS NULL OR "+Table+".sku = '' THEN EXCLUDED.sku ELSE "+Table+".sku END")
		default:
			sets = append(sets, col+" = EXCLUDED."+col)
		}
	}
	return "ON CONFLICT (handle) DO UPDATE SET\n    " + strings.Join(sets, ",\n    ")
}

// VerifyQuery summarizes the imported rows per category and subcategory,
// restricted to the SKU series present in sections.
func VerifyQuery(sections []domain.Section) string {
	var series []string
	seen := make(map[string]bool)
	for _, s := range sections {
		for _, rec := range s.Records {
			head, _, _ := strings.Cut(rec.SKU, "-")
			if !seen[head] {
				seen[head] = true
				series = append(series, "sku LIKE "+Quote(head+"-%"))
			}
		}
	}

	var b strings.Builder
	b.WriteString("\n\n-- Verify import\n")
	b.WriteString("SELECT category, subcategory, COUNT(*) as count, MIN(base_price) as min_price, MAX(base_price) as max_price\n")
	b.WriteString("FROM " + Table + "\n")
	if len(series) > 0 {
		b.WriteString("WHERE " + strings.Join(series, " OR ") + "\n")
	}
	b.WriteString("GROUP BY category, subcategory\n")
	b.WriteString("ORDER BY category, subcategory;\n")
	return b.String()
}

type imageRef struct {
	URL string `json:"url"`
}

type imageSet struct {
	Hero    *imageRef  `json:"hero,omitempty"`
	Gallery []imageRef `json:"gallery,omitempty"`
}

func sqlImages(rec *domain.ProductRecord) imageSet {
	var set imageSet
	if rec.Hero != nil {
		set.Hero = &imageRef{URL: rec.Hero.CDNURL}
	}
	for _, img := range rec.Gallery {
		set.Gallery = append(set.Gallery, imageRef{URL: img.CDNURL})
	}
	return set
}

// compactJSON encodes v on one line without HTML escaping.
func compactJSON(v any) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
