// Package emit renders catalog records and the CDN index into files.
package emit

import (
	"fmt"
	"strings"
)

// Quote renders s as a SQL string literal, doubling embedded single quotes.
//
//	Men's Suit → 'Men''s Suit'
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Unquote reverses Quote. It rejects input that is not exactly one literal.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return "", fmt.Errorf("not a quoted literal: %s", lit)
	}
	inner := lit[1 : len(lit)-1]

	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\'' {
			if i+1 >= len(inner) || inner[i+1] != '\'' {
				return "", fmt.Errorf("unescaped quote at offset %d in %s", i+1, lit)
			}
			i++
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// QuoteArray renders an ARRAY[...] of quoted strings.
func QuoteArray(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = Quote(s)
	}
	return "ARRAY[" + strings.Join(quoted, ", ") + "]"
}

// Bool renders a SQL boolean.
func Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
