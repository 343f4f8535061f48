package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"classic-navy-suit", "Classic Navy Suit"},
		{"black-tuxedo", "Black Tuxedo"},
		{"BLACK-tux", "Black Tux"},
		{"tuxedo-ii", "Tuxedo II"},
		{"vest-set-xl", "Vest Set XL"},
		{"shirt-XXL", "Shirt XXL"},
		{"model-iv-v-vi", "Model IV V VI"},
		{"double--dash", "Double Dash"},
		{"  padded-slug  ", "Padded Slug"},
		{"mens-shirts", "Mens Shirts"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Title(tt.input)
			if result != tt.expected {
				t.Errorf("Title(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "NAVY", "navy"},
		{"spaces to dashes", "classic navy", "classic-navy"},
		{"underscores to dashes", "classic_navy", "classic-navy"},
		{"already normalized", "classic-navy-suit", "classic-navy-suit"},
		{"apostrophe removal", "Men's Shirts", "mens-shirts"},
		{"punctuation", "suits/tuxedos!", "suits-tuxedos"},
		{"collapse dashes", "--slow--fit--", "slow-fit"},
		{"numbers kept", "Fall 2025", "fall-2025"},
		{"empty", "", ""},
		{"only symbols", "!@#", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.input))
		})
	}
}

func TestTitle_StableOverCanonicalSlug(t *testing.T) {
	inputs := []string{
		"classic-navy-suit",
		"tuxedo-ii-xl",
		"Dark_Grey Stretch Suit",
		"burnt-orange-vest-tie-set",
		"SAGE--green",
		"double-breasted-vi",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			title := Title(Slug(in))
			assert.Equal(t, title, Title(Slug(title)))
		})
	}
}

func TestReplacer(t *testing.T) {
	table := []Replacement{{From: "Mens", To: "Men's"}}

	tests := map[string]string{
		"Mens Shirts":        "Men's Shirts",
		"White Mens Shirt":   "White Men's Shirt",
		"Womens Shirt":       "Womens Shirt",
		"Mensware Catalogue": "Mensware Catalogue",
		"Classic Navy Suit":  "Classic Navy Suit",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ApplyReplacements(in, table))
		})
	}
}

func TestReplacer_Nil(t *testing.T) {
	var r *Replacer
	assert.Equal(t, "Mens", r.Apply("Mens"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "navy", sanitizeString("na\x00vy"))
}
