package service

import (
	"context"

	"github.com/kctmenswear/catalog-importer/internal/domain"
	"github.com/kctmenswear/catalog-importer/internal/scanner"
	"github.com/kctmenswear/catalog-importer/internal/watcher"
)

// RunFunc is called after each re-index triggered by a change batch.
type RunFunc func(res *IndexResult, diff scanner.IndexDiff)

// Watch re-runs the index every time batcher flushes a batch of settled
// events, starting from prev. It returns when ctx is canceled or events closes.
// Runs whose index is unchanged are reported with an empty diff.
func (s *IndexService) Watch(ctx context.Context, events <-chan watcher.Event, batcher *watcher.Batcher, prev *domain.Index, onRun RunFunc) error {
	if prev == nil {
		prev = domain.NewIndex(s.catalog.BaseURL)
	}

	return batcher.Run(ctx, events, func(ctx context.Context, batch watcher.Batch) error {
		s.logger.Info("catalog changed", "events", len(batch), "first", batch[0].Path)

		res, err := s.Run(ctx)
		if err != nil {
			return err
		}
		diff := scanner.Diff(prev, res.Index)
		prev = res.Index

		if onRun != nil {
			onRun(res, diff)
		}
		return nil
	})
}
