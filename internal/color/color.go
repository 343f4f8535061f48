// Package color infers a colour name and colour family from a product name.
package color

import (
	"strings"

	"github.com/kctmenswear/catalog-importer/internal/rules"
)

// Defaults used when no keyword or family matches.
const (
	DefaultName   = "Classic"
	DefaultFamily = "Multi"
)

// Entry maps a keyword found in text to the label it yields.
type Entry struct {
	Keyword string `yaml:"keyword" validate:"required"`
	Label   string `yaml:"label" validate:"required"`
}

// Inferrer holds the keyword and family tables.
type Inferrer struct {
	keywords rules.List[string]
	families rules.List[string]
}

// NewInferrer builds an inferrer. Both tables are matched by case-insensitive
// substring in the given order.
func NewInferrer(keywords, families []Entry) *Inferrer {
	return &Inferrer{
		keywords: containsRules(keywords),
		families: containsRules(families),
	}
}

// Name collects every keyword found in name, joined with spaces in table order.
//
//	"Dark Navy Suit" → "Navy Dark"
func (i *Inferrer) Name(name string) string {
	found := i.keywords.All(name)
	if len(found) == 0 {
		return DefaultName
	}
	return strings.Join(found, " ")
}

// Family maps a colour name to its family. First match wins.
func (i *Inferrer) Family(colorName string) string {
	if family, ok := i.families.First(colorName); ok {
		return family
	}
	return DefaultFamily
}

// Infer returns both the colour name and family for a product name.
func (i *Inferrer) Infer(name string) (colorName, family string) {
	colorName = i.Name(name)
	return colorName, i.Family(colorName)
}

func containsRules(entries []Entry) rules.List[string] {
	list := make(rules.List[string], 0, len(entries))
	for _, e := range entries {
		list = append(list, rules.Rule[string]{Label: e.Label, Match: rules.Contains(e.Keyword)})
	}
	return list
}
