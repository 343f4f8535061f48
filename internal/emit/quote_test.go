package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"Classic Navy Suit":     "'Classic Navy Suit'",
		"Men's Suit":            "'Men''s Suit'",
		"''":                    "''''''",
		"":                      "''",
		`{"primary": "Wool's"}`: `'{"primary": "Wool''s"}'`,
		"back\\slash":           "'back\\slash'",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Quote(in))
		})
	}
}

func TestQuote_RoundTrip(t *testing.T) {
	inputs := []string{
		"", "plain", "Men's Suit", "'leading", "trailing'", "a''b",
		"It's the tailor's", `{"url": "https://cdn/o'brien.webp"}`, "ünïcødé ' ok",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			out, err := Unquote(Quote(in))
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestUnquote_Rejects(t *testing.T) {
	for _, lit := range []string{"", "'", "noquotes", "'Men's'", "'open", "close'"} {
		t.Run(lit, func(t *testing.T) {
			_, err := Unquote(lit)
			assert.Error(t, err)
		})
	}
}

func TestQuoteArray(t *testing.T) {
	assert.Equal(t, "ARRAY['suits', 'men''s', 'fall 2025']", QuoteArray([]string{"suits", "men's", "fall 2025"}))
	assert.Equal(t, "ARRAY[]", QuoteArray(nil))
}

func TestBool(t *testing.T) {
	assert.Equal(t, "true", Bool(true))
	assert.Equal(t, "false", Bool(false))
}
