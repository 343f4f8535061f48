package id

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStable_Deterministic(t *testing.T) {
	ctx := context.Background()

	first, err := Stable{}.Assign(ctx, "suits/classic-navy-suit")
	require.NoError(t, err)
	second, err := Stable{}.Assign(ctx, "suits/classic-navy-suit")
	require.NoError(t, err)
	other, err := Stable{}.Assign(ctx, "tuxedos/classic-navy-suit")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}

func TestRandom_Unique(t *testing.T) {
	ctx := context.Background()
	seen := make(map[string]bool)
	for range 200 {
		id, err := Random{}.Assign(ctx, "suits/classic-navy-suit")
		require.NoError(t, err)
		assert.False(t, seen[id], "ID should be unique: %s", id)
		seen[id] = true

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
	}
}

func TestGenerate_Format(t *testing.T) {
	id, err := Generate("run")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "run-"))
	assert.Len(t, id, len("run-")+21)
}

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	for range 500 {
		id := MustGenerate("run")
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}
}
