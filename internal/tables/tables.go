package tables

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kctmenswear/catalog-importer/internal/color"
	"github.com/kctmenswear/catalog-importer/internal/domain"
	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
	"github.com/kctmenswear/catalog-importer/internal/imagerole"
	"github.com/kctmenswear/catalog-importer/internal/normalize"
	"github.com/kctmenswear/catalog-importer/internal/pricing"
	"github.com/kctmenswear/catalog-importer/internal/validation"
)

// Category is a resolved category mapping.
type Category struct {
	Folder         string
	Name           string
	Subcategory    string
	Kind           domain.ProductKind
	BasePrice      decimal.Decimal
	CompareAtPrice decimal.Decimal
	SKUPrefix      string
	FitType        string
	CDNPrefix      string
	Collection     string
	// Derived is set when the folder had no entry and the fallback was used.
	Derived bool
}

// Collection is a compiled CollectionSpec.
type Collection struct {
	Key             string
	Title           string
	Season          string
	Name            string
	Status          string
	Indexable       bool
	SitemapPriority decimal.Decimal
	Materials       domain.Materials

	description     *template.Template
	metaTitle       *template.Template
	metaDescription *template.Template
	metaKeywords    []*template.Template
	ogTitle         *template.Template
	ogDescription   *template.Template
	searchTerms     *template.Template
}

// TextData is the data passed to collection text templates.
type TextData struct {
	Name        string
	Slug        string
	Category    string
	Subcategory string
	ColorName   string
	Price       string
	Season      string
	Collection  string
}

// Text is the rendered set of description and SEO fields.
type Text struct {
	Description     string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string
	OGTitle         string
	OGDescription   string
	SearchTerms     string
}

// Tables is the compiled, read-only lookup data.
type Tables struct {
	Extensions   []string
	GroupFolders []string
	Colors       *color.Inferrer
	Tiers        *pricing.Tiers
	Replacer     *normalize.Replacer

	categories  map[string]*Category
	order       []string
	fallback    FallbackSpec
	collections map[string]*Collection
	profiles    map[domain.ProductKind]*imagerole.Profile
}

// Default compiles the built-in tables.
func Default() *Tables {
	t, err := Compile(DefaultSpec())
	if err != nil {
		panic(fmt.Sprintf("built-in tables are invalid: %v", err))
	}
	return t
}

// Load reads a YAML table file. Sections present in the file replace the
// built-in ones; absent sections keep their defaults. An empty path returns
// the defaults.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerrors.NotFoundf("tables file %s not found", path)
		}
		return nil, domainerrors.Wrapf(err, domainerrors.CodeIO, "read tables file %s", path)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Compile(spec)
}

// Parse decodes a YAML document on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (Spec, error) {
	spec := DefaultSpec()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return Spec{}, domainerrors.Wrap(err, domainerrors.CodeValidation, "parse tables")
	}
	return spec, nil
}

// Compile validates spec and builds the lookup structures.
func Compile(spec Spec) (*Tables, error) {
	if err := validation.New().Validate(spec); err != nil {
		return nil, err
	}

	tiers, err := pricing.New(spec.PriceBreakpoints)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "price_breakpoints")
	}

	t := &Tables{
		Extensions:   lowerAll(spec.Extensions),
		GroupFolders: spec.GroupFolders,
		Colors:       color.NewInferrer(spec.ColorKeywords, spec.ColorFamilies),
		Tiers:        tiers,
		Replacer:     normalize.NewReplacer(spec.NameReplacements),
		categories:   make(map[string]*Category, len(spec.Categories)),
		fallback:     spec.Fallback,
		collections:  make(map[string]*Collection, len(spec.Collections)),
		profiles:     make(map[domain.ProductKind]*imagerole.Profile, len(spec.Profiles)),
	}

	for _, cs := range spec.Collections {
		if _, dup := t.collections[cs.Key]; dup {
			return nil, domainerrors.Validationf("collection %q defined twice", cs.Key)
		}
		c, err := compileCollection(cs)
		if err != nil {
			return nil, err
		}
		t.collections[cs.Key] = c
	}

	for kind, ps := range spec.Profiles {
		p, err := ps.Compile(kind)
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "profiles")
		}
		t.profiles[kind] = p
	}

	for _, cs := range spec.Categories {
		if _, dup := t.categories[cs.Folder]; dup {
			return nil, domainerrors.Validationf("category %q defined twice", cs.Folder)
		}
		if _, ok := t.collections[cs.Collection]; !ok {
			return nil, domainerrors.Validationf("category %q references unknown collection %q", cs.Folder, cs.Collection)
		}
		if _, ok := t.profiles[cs.Kind]; !ok {
			return nil, domainerrors.Validationf("category %q has no image profile for kind %q", cs.Folder, cs.Kind)
		}
		t.categories[cs.Folder] = &Category{
			Folder:         cs.Folder,
			Name:           cs.Name,
			Subcategory:    cs.Subcategory,
			Kind:           cs.Kind,
			BasePrice:      decimal.RequireFromString(cs.BasePrice),
			CompareAtPrice: compareAt(cs.BasePrice, cs.CompareAtOffset),
			SKUPrefix:      cs.SKUPrefix,
			FitType:        cs.FitType,
			CDNPrefix:      cs.CDNPrefix,
			Collection:     cs.Collection,
		}
		t.order = append(t.order, cs.Folder)
	}

	if _, ok := t.collections[spec.Fallback.Collection]; !ok {
		return nil, domainerrors.Validationf("fallback references unknown collection %q", spec.Fallback.Collection)
	}
	if _, ok := t.profiles[domain.KindApparel]; !ok {
		return nil, domainerrors.Validationf("fallback needs an %q image profile", domain.KindApparel)
	}

	return t, nil
}

// Category returns the mapping of folder, deriving one from the fallback for unknown folders.
func (t *Tables) Category(folder string) *Category {
	if c, ok := t.categories[folder]; ok {
		return c
	}
	name := normalize.Title(folder)
	return &Category{
		Folder:         folder,
		Name:           name,
		Subcategory:    t.fallback.Subcategory,
		Kind:           domain.KindApparel,
		BasePrice:      decimal.RequireFromString(t.fallback.BasePrice),
		CompareAtPrice: compareAt(t.fallback.BasePrice, t.fallback.CompareAtOffset),
		SKUPrefix:      skuPrefix(t.fallback.SKUSeries, folder),
		FitType:        t.fallback.FitType,
		Collection:     t.fallback.Collection,
		Derived:        true,
	}
}

// Known reports whether folder has an explicit mapping.
func (t *Tables) Known(folder string) bool {
	_, ok := t.categories[folder]
	return ok
}

// CategoryFolders returns the configured folders in table order.
func (t *Tables) CategoryFolders() []string {
	return append([]string(nil), t.order...)
}

// Collection returns the collection registered under key.
func (t *Tables) Collection(key string) (*Collection, bool) {
	c, ok := t.collections[key]
	return c, ok
}

// Profile returns the image profile for kind.
func (t *Tables) Profile(kind domain.ProductKind) (*imagerole.Profile, bool) {
	p, ok := t.profiles[kind]
	return p, ok
}

// IsGroupFolder reports whether name is a grouping folder stripped during discovery.
func (t *Tables) IsGroupFolder(name string) bool {
	for _, g := range t.GroupFolders {
		if strings.EqualFold(g, name) {
			return true
		}
	}
	return false
}

// Render executes every text template of the collection against data.
func (c *Collection) Render(data TextData) (Text, error) {
	var out Text
	var err error
	fields := []struct {
		tmpl *template.Template
		dst  *string
	}{
		{c.description, &out.Description},
		{c.metaTitle, &out.MetaTitle},
		{c.metaDescription, &out.MetaDescription},
		{c.ogTitle, &out.OGTitle},
		{c.ogDescription, &out.OGDescription},
		{c.searchTerms, &out.SearchTerms},
	}
	for _, f := range fields {
		if *f.dst, err = execute(f.tmpl, data); err != nil {
			return Text{}, err
		}
	}
	out.MetaKeywords = make([]string, 0, len(c.metaKeywords))
	for _, kw := range c.metaKeywords {
		s, err := execute(kw, data)
		if err != nil {
			return Text{}, err
		}
		out.MetaKeywords = append(out.MetaKeywords, s)
	}
	return out, nil
}

func compileCollection(cs CollectionSpec) (*Collection, error) {
	c := &Collection{
		Key:             cs.Key,
		Title:           cs.Title,
		Season:          cs.Season,
		Name:            cs.Name,
		Status:          cs.Status,
		Indexable:       cs.Indexable,
		SitemapPriority: decimal.RequireFromString(cs.SitemapPriority),
		Materials:       domain.Materials(cs.Materials),
	}

	var err error
	parse := func(field, text string) *template.Template {
		if err != nil {
			return nil
		}
		var tmpl *template.Template
		tmpl, err = template.New(cs.Key + "." + field).Funcs(textFuncs).Option("missingkey=error").Parse(text)
		if err != nil {
			err = domainerrors.Wrapf(err, domainerrors.CodeValidation, "collection %s: %s template", cs.Key, field)
		}
		return tmpl
	}

	c.description = parse("description", cs.Text.Description)
	c.metaTitle = parse("meta_title", cs.Text.MetaTitle)
	c.metaDescription = parse("meta_description", cs.Text.MetaDescription)
	c.ogTitle = parse("og_title", cs.Text.OGTitle)
	c.ogDescription = parse("og_description", cs.Text.OGDescription)
	c.searchTerms = parse("search_terms", cs.Text.SearchTerms)
	for i, kw := range cs.Text.MetaKeywords {
		c.metaKeywords = append(c.metaKeywords, parse(fmt.Sprintf("meta_keywords[%d]", i), kw))
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

//nolint:gochecknoglobals // Template function table
var textFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"title": normalize.Title,
	"slug":  normalize.Slug,
}

func execute(tmpl *template.Template, data TextData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", domainerrors.Wrapf(err, domainerrors.CodeInternal, "render %s", tmpl.Name())
	}
	return b.String(), nil
}

func compareAt(base, offset string) decimal.Decimal {
	price := decimal.RequireFromString(base)
	if offset == "" {
		return price
	}
	return price.Add(decimal.RequireFromString(offset))
}

// skuPrefix builds "{series}-{first three characters of folder, upper-cased}".
func skuPrefix(series, folder string) string {
	head := folder
	if len(head) > 3 {
		head = head[:3]
	}
	return series + "-" + strings.ToUpper(head)
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
