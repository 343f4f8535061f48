package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsRecords(t *testing.T) {
	t.Setenv("CATALOG_ROOT", "")
	t.Setenv("WATCH", "")

	root := t.TempDir()
	for _, name := range []string{"main.webp", "back.webp"} {
		image := filepath.Join(root, "suits", "classic-navy-suit", name)
		require.NoError(t, os.MkdirAll(filepath.Dir(image), 0o755))
		require.NoError(t, os.WriteFile(image, []byte("img"), 0o644))
	}

	var out bytes.Buffer
	code := run([]string{"-root", root, "-log-level", "error", "-env-file", filepath.Join(root, "none.env")}, &out)
	require.Equal(t, 0, code)

	printed := out.String()
	assert.Contains(t, printed, "F25-SUI-001")
	assert.Contains(t, printed, "Classic Navy Suit")
	assert.Contains(t, printed, "Navy (Blue)")
	assert.Contains(t, printed, "hero")
	assert.Contains(t, printed, "Products: 1")
}

func TestRun_MissingRoot(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	code := run([]string{"-root", filepath.Join(dir, "missing"), "-log-level", "error", "-env-file", filepath.Join(dir, "none.env")}, &out)
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Products: 0")
}

func TestRun_InvalidFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run([]string{"-ids", "sequential", "-env-file", filepath.Join(t.TempDir(), "none.env")}, &out))
	assert.Empty(t, out.String())
}
