// Package pricing maps a base price onto a price tier.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kctmenswear/catalog-importer/internal/domain"
)

// DefaultBreakpoints are the lower bounds of tiers 2 through 10.
//
//nolint:gochecknoglobals // Static pricing table
var DefaultBreakpoints = []string{"75", "100", "125", "150", "200", "250", "300", "400", "500"}

// Tiers is a step function over ascending breakpoints.
// A price equal to a breakpoint belongs to the higher tier.
type Tiers struct {
	breakpoints []decimal.Decimal
}

// New parses and validates breakpoints. They must be strictly ascending.
func New(breakpoints []string) (*Tiers, error) {
	parsed := make([]decimal.Decimal, 0, len(breakpoints))
	for i, raw := range breakpoints {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %d: %w", i, err)
		}
		if i > 0 && !d.GreaterThan(parsed[i-1]) {
			return nil, fmt.Errorf("breakpoint %d (%s) is not greater than %s", i, d, parsed[i-1])
		}
		parsed = append(parsed, d)
	}
	return &Tiers{breakpoints: parsed}, nil
}

// Default returns the standard ten-tier table.
func Default() *Tiers {
	t, err := New(DefaultBreakpoints)
	if err != nil {
		panic(err)
	}
	return t
}

// For returns the tier of price: one plus the number of breakpoints at or below it.
func (t *Tiers) For(price decimal.Decimal) domain.PriceTier {
	tier := 1
	for _, bp := range t.breakpoints {
		if price.LessThan(bp) {
			break
		}
		tier++
	}
	return domain.PriceTier(tier)
}

// Count is the number of tiers.
func (t *Tiers) Count() int {
	return len(t.breakpoints) + 1
}
