// Package normalize converts folder slugs into display names and back.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperWords are emitted fully upper-cased instead of title-cased.
//
//nolint:gochecknoglobals // Static lookup table for name normalization
var upperWords = map[string]bool{
	"ii": true, "iii": true, "iv": true, "v": true, "vi": true,
	"xl": true, "xxl": true,
}

var (
	// Matches spaces, underscores, and slashes (for replacement with dashes).
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// Matches non-alphanumeric characters (except dashes).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
)

// Title converts a hyphenated slug to a display name.
//
//	"classic-navy-suit" → "Classic Navy Suit"
//	"tuxedo-ii-xl"      → "Tuxedo II XL"
//	"BLACK-tux"         → "Black Tux"
//
// Empty input yields an empty string.
func Title(slug string) string {
	words := strings.Fields(strings.ReplaceAll(sanitizeString(slug), "-", " "))
	if len(words) == 0 {
		return ""
	}

	caser := cases.Title(language.English)
	for i, w := range words {
		if upperWords[strings.ToLower(w)] {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// Slug converts a display name or raw folder name to a canonical slug.
//
// Normalization rules:
//  1. Trim whitespace and lowercase
//  2. Replace spaces, underscores and slashes with dashes
//  3. Remove non-alphanumeric characters (except dashes)
//  4. Collapse multiple dashes
//  5. Trim leading/trailing dashes
//
// Examples:
//
//	"Classic Navy Suit" → "classic-navy-suit"
//	"Men's Shirts"      → "mens-shirts"
//	"  Fall_2025 "      → "fall-2025"
func Slug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Replacement rewrites a whole word in a display name.
type Replacement struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
}

// Replacer applies an ordered list of whole-word replacements.
type Replacer struct {
	patterns []*regexp.Regexp
	values   []string
}

// NewReplacer compiles replacements. Matching is case-sensitive and bound to word edges.
func NewReplacer(table []Replacement) *Replacer {
	r := &Replacer{
		patterns: make([]*regexp.Regexp, 0, len(table)),
		values:   make([]string, 0, len(table)),
	}
	for _, rep := range table {
		r.patterns = append(r.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(rep.From)+`\b`))
		r.values = append(r.values, rep.To)
	}
	return r
}

// Apply runs every replacement over name in table order.
func (r *Replacer) Apply(name string) string {
	if r == nil {
		return name
	}
	for i, re := range r.patterns {
		name = re.ReplaceAllLiteralString(name, r.values[i])
	}
	return name
}

// ApplyReplacements is a convenience for one-off use of a replacement table.
func ApplyReplacements(name string, table []Replacement) string {
	return NewReplacer(table).Apply(name)
}

// sanitizeString removes null bytes, which break SQL literals and JSON parsing.
func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, s)
}
