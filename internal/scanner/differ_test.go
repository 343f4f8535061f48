package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kctmenswear/catalog-importer/internal/domain"
)

func TestDiff(t *testing.T) {
	prev := domain.NewIndex(baseURL)
	prev.Add("suits", "navy", domain.ImageDescriptor{ImageName: "main.webp", CDNURL: "u/suits/navy/main.webp"})
	prev.Add("suits", "grey", domain.ImageDescriptor{ImageName: "main.webp", CDNURL: "u/suits/grey/main.webp"})

	next := domain.NewIndex(baseURL)
	next.Add("suits", "navy", domain.ImageDescriptor{ImageName: "main.webp", CDNURL: "u/suits/navy/main.webp"})
	next.Add("suits", "navy", domain.ImageDescriptor{ImageName: "side.webp", CDNURL: "u/suits/navy/side.webp"})
	next.Add("tuxedos", "black", domain.ImageDescriptor{ImageName: "main.webp", CDNURL: "u/tuxedos/black/main.webp"})

	diff := Diff(prev, next)

	assert.False(t, diff.Empty())
	assert.Equal(t, []string{"tuxedos/black"}, diff.AddedProducts)
	assert.Equal(t, []string{"suits/grey"}, diff.RemovedProducts)
	assert.Equal(t, []string{"u/suits/navy/side.webp", "u/tuxedos/black/main.webp"}, diff.AddedImages)
	assert.Equal(t, []string{"u/suits/grey/main.webp"}, diff.RemovedImages)
}

func TestDiff_NilPrevious(t *testing.T) {
	next := domain.NewIndex(baseURL)
	next.Add("suits", "navy", domain.ImageDescriptor{CDNURL: "u1"})

	diff := Diff(nil, next)

	assert.Equal(t, []string{"suits/navy"}, diff.AddedProducts)
	assert.Equal(t, []string{"u1"}, diff.AddedImages)
}

func TestDiff_Unchanged(t *testing.T) {
	idx := domain.NewIndex(baseURL)
	idx.Add("suits", "navy", domain.ImageDescriptor{CDNURL: "u1"})

	assert.True(t, Diff(idx, idx).Empty())
}
