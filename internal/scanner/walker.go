package scanner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Walker traverses the filesystem and discovers image files.
type Walker struct {
	logger     *slog.Logger
	extensions map[string]bool
}

// NewWalker creates a walker that keeps files whose extension is in
// extensions (case-insensitive). An empty list keeps every file.
func NewWalker(logger *slog.Logger, extensions []string) *Walker {
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}
	return &Walker{
		logger:     logger,
		extensions: exts,
	}
}

// WalkResult represents a file discovered during walking.
type WalkResult struct {
	Path    string
	RelPath string
	Size    int64
	ModTime int64
}

// Walk traverses a directory and streams discovered files in lexical order.
// The channel closes when the walk is complete or ctx is canceled.
func (w *Walker) Walk(ctx context.Context, rootPath string) <-chan WalkResult {
	results := make(chan WalkResult, 100)

	go func() {
		defer close(results)

		err := filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err != nil {
				w.logger.Error("walk error", "path", path, "error", err)
				return nil
			}

			// Skip hidden files/directories.
			if path != rootPath && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() || !w.accepts(d.Name()) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				w.logger.Error("failed to get file info", "path", path, "error", err)
				return nil
			}

			relPath, err := filepath.Rel(rootPath, path)
			if err != nil {
				w.logger.Error("failed to compute relative path", "path", path, "error", err)
				return nil
			}

			result := WalkResult{
				Path:    path,
				RelPath: relPath,
				Size:    info.Size(),
				ModTime: info.ModTime().UnixMilli(),
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

			return nil
		})

		if err != nil && !errors.Is(err, context.Canceled) {
			w.logger.Error("walk failed", "root", rootPath, "error", err)
		}
	}()

	return results
}

func (w *Walker) accepts(name string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	return w.extensions[strings.ToLower(filepath.Ext(name))]
}
