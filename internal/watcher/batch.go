package watcher

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/time/rate"
)

// Batch is a set of settled events, one per path, in path order.
type Batch []Event

// Paths returns the paths in the batch.
func (b Batch) Paths() []string {
	paths := make([]string, len(b))
	for i, e := range b {
		paths[i] = e.Path
	}
	return paths
}

// Batcher groups events that arrive close together and hands them to a
// handler. Handler runs are throttled to at most one per MinInterval.
type Batcher struct {
	logger  *slog.Logger
	quiet   time.Duration
	limiter *rate.Limiter
}

// NewBatcher creates a batcher that flushes after quiet has passed without a
// new event and never runs the handler more often than once per minInterval.
func NewBatcher(logger *slog.Logger, quiet, minInterval time.Duration) *Batcher {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Batcher{
		logger:  logger,
		quiet:   quiet,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Run consumes events until ctx is canceled or events is closed, then
// flushes what is pending. Handler errors are logged and do not stop the loop.
func (b *Batcher) Run(ctx context.Context, events <-chan Event, handle func(context.Context, Batch) error) error {
	pending := make(map[string]Event)

	timer := time.NewTimer(b.quiet)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := b.limiter.Wait(ctx); err != nil {
			return err
		}
		batch := make(Batch, 0, len(pending))
		for _, e := range pending {
			batch = append(batch, e)
		}
		sort.Slice(batch, func(i, j int) bool { return batch[i].Path < batch[j].Path })
		clear(pending)

		b.logger.Debug("flushing change batch", "events", len(batch))
		if err := handle(ctx, batch); err != nil {
			b.logger.Error("change handler failed", "events", len(batch), "error", err)
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-events:
			if !ok {
				return flush()
			}
			pending[e.Path] = e
			timer.Reset(b.quiet)
		case <-timer.C:
			if err := flush(); err != nil {
				return err
			}
		}
	}
}
