// Package catalog infers product records from a CDN index.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/kctmenswear/catalog-importer/internal/domain"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/id"
	"github.com/kctmenswear/catalog-importer/internal/normalize"
	"github.com/kctmenswear/catalog-importer/internal/tables"
)

// Builder derives ProductRecords from discovered products.
type Builder struct {
	tables *tables.Tables
	ids    id.Assigner
	logger *slog.Logger
}

// NewBuilder creates a builder. A nil assigner uses stable ids.
func NewBuilder(t *tables.Tables, ids id.Assigner, logger *slog.Logger) *Builder {
	if ids == nil {
		ids = id.Stable{}
	}
	return &Builder{tables: t, ids: ids, logger: logger}
}

// Build returns one record per product, ordered by category then product folder.
// SKUs are numbered per prefix in that order. Two folders of one category that
// normalize to the same slug fail with a conflict error.
func (b *Builder) Build(ctx context.Context, idx *domain.Index) ([]*domain.ProductRecord, error) {
	var records []*domain.ProductRecord
	seq := make(map[string]int)

	for _, folder := range idx.CategoryNames() {
		cat := b.tables.Category(folder)
		if cat.Derived {
			b.logger.Warn("category has no table entry, using fallback mapping",
				"category", folder, "sku_prefix", cat.SKUPrefix, "base_price", cat.BasePrice.StringFixed(2))
		}

		seen := make(map[string]string)
		for _, productFolder := range idx.ProductNames(folder) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			slug := normalize.Slug(productFolder)
			if slug == "" {
				b.logger.Warn("product folder has no usable slug, skipping", "category", folder, "folder", productFolder)
				continue
			}
			if other, dup := seen[slug]; dup {
				return nil, domainerrors.Conflictf("category %s: folders %q and %q share slug %q", folder, other, productFolder, slug)
			}
			seen[slug] = productFolder

			// Numbering restarts for each prefix, not per collection.
			seq[cat.SKUPrefix]++
			rec, err := b.product(ctx, cat, slug, idx.Categories[folder][productFolder].Images, seq[cat.SKUPrefix])
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", folder, productFolder, err)
			}
			records = append(records, rec)
		}
	}

	b.logger.Debug("built catalog records", "products", len(records))
	return records, nil
}

func (b *Builder) product(ctx context.Context, cat *tables.Category, slug string, images []domain.ImageDescriptor, n int) (*domain.ProductRecord, error) {
	coll, ok := b.tables.Collection(cat.Collection)
	if !ok {
		return nil, domainerrors.Validationf("unknown collection %q", cat.Collection)
	}
	profile, ok := b.tables.Profile(cat.Kind)
	if !ok {
		return nil, domainerrors.Validationf("no image profile for kind %q", cat.Kind)
	}

	name := b.tables.Replacer.Apply(normalize.Title(slug))
	categoryName := b.tables.Replacer.Apply(cat.Name)
	colorName, family := b.tables.Colors.Infer(name)

	sorted := append([]domain.ImageDescriptor(nil), images...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ImageName < sorted[j].ImageName })
	classified := profile.Assign(sorted)
	selection := profile.Select(classified)

	rec := &domain.ProductRecord{
		Slug:            slug,
		Name:            name,
		CategorySlug:    cat.Folder,
		Category:        categoryName,
		Subcategory:     cat.Subcategory,
		SKU:             fmt.Sprintf("%s-%03d", cat.SKUPrefix, n),
		ColorName:       colorName,
		ColorFamily:     family,
		PriceTier:       b.tables.Tiers.For(cat.BasePrice),
		BasePrice:       cat.BasePrice,
		CompareAtPrice:  cat.CompareAtPrice,
		Kind:            cat.Kind,
		Season:          coll.Season,
		Collection:      coll.Name,
		CollectionKey:   coll.Key,
		FitType:         cat.FitType,
		Materials:       coll.Materials,
		Images:          classified,
		Hero:            selection.Hero,
		Gallery:         selection.Gallery,
		SitemapPriority: coll.SitemapPriority,
		Status:          coll.Status,
		Indexable:       coll.Indexable,
	}

	text, err := coll.Render(tables.TextData{
		Name:        rec.Name,
		Slug:        rec.Slug,
		Category:    rec.Category,
		Subcategory: rec.Subcategory,
		ColorName:   rec.ColorName,
		Price:       rec.BasePrice.StringFixed(2),
		Season:      rec.Season,
		Collection:  rec.Collection,
	})
	if err != nil {
		return nil, err
	}
	rec.Description = text.Description
	rec.MetaTitle = text.MetaTitle
	rec.MetaDescription = text.MetaDescription
	rec.MetaKeywords = text.MetaKeywords
	rec.OGTitle = text.OGTitle
	rec.OGDescription = text.OGDescription
	rec.SearchTerms = text.SearchTerms

	rec.ID, err = b.ids.Assign(ctx, rec.Key())
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "assign id")
	}
	return rec, nil
}

// Sections groups records by collection, titled from the collection table.
// Sections appear in order of first use and keep record order.
func (b *Builder) Sections(records []*domain.ProductRecord) []domain.Section {
	var sections []domain.Section
	pos := make(map[string]int)
	for _, r := range records {
		i, ok := pos[r.CollectionKey]
		if !ok {
			title := r.Collection
			if coll, found := b.tables.Collection(r.CollectionKey); found {
				title = coll.Title
			}
			i = len(sections)
			pos[r.CollectionKey] = i
			sections = append(sections, domain.Section{Title: title})
		}
		sections[i].Records = append(sections[i].Records, r)
	}
	return sections
}
