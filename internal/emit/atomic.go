package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	domainerrors "github.com/kctmenswear/catalog-importer/internal/errors"
)

// WriteFile renders into a temp file next to path and renames it into place,
// so readers never observe a partially written file.
func WriteFile(path string, render func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeIO, "create output dir %s", dir)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeIO, "create temp file for %s", path)
	}
	tmpPath := f.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpPath)
	}()

	if err := render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return domainerrors.Wrapf(err, domainerrors.CodeIO, "sync %s", tmpPath)
	}
	if err := f.Close(); err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeIO, "close %s", tmpPath)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeIO, "chmod %s", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeIO, "rename %s", path)
	}
	return nil
}
