package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kctmenswear/catalog-importer/internal/domain"
)

func TestTiers_For(t *testing.T) {
	tiers := Default()

	tests := []struct {
		price string
		want  domain.PriceTier
	}{
		{"0", 1},
		{"49.99", 1},
		{"74.99", 1},
		{"75.00", 2},
		{"79.99", 2},
		{"99.99", 2},
		{"100", 3},
		{"125", 4},
		{"150", 5},
		{"200", 6},
		{"250", 7},
		{"300", 8},
		{"399.99", 8},
		{"400", 9},
		{"449.99", 9},
		{"499.99", 9},
		{"500.00", 10},
		{"10000", 10},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, tiers.For(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestTiers_Monotonic(t *testing.T) {
	tiers := Default()
	prev := domain.PriceTier(0)
	for cents := int64(0); cents <= 60000; cents += 37 {
		got := tiers.For(decimal.New(cents, -2))
		assert.GreaterOrEqual(t, int(got), int(prev), "price %d cents", cents)
		prev = got
	}
	assert.Equal(t, domain.PriceTier(10), prev)
	assert.Equal(t, 10, tiers.Count())
}

func TestNew_RejectsUnsorted(t *testing.T) {
	_, err := New([]string{"100", "75"})
	require.Error(t, err)

	_, err = New([]string{"75", "75"})
	require.Error(t, err)

	_, err = New([]string{"abc"})
	require.Error(t, err)
}

func TestNew_CustomTable(t *testing.T) {
	tiers, err := New([]string{"10", "20"})
	require.NoError(t, err)

	assert.Equal(t, "TIER_1", tiers.For(decimal.NewFromInt(9)).String())
	assert.Equal(t, "TIER_3", tiers.For(decimal.NewFromInt(20)).String())
}
