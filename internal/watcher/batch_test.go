package watcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recorder struct {
	mu      sync.Mutex
	batches []Batch
	at      []time.Time
}

func (r *recorder) handle(_ context.Context, b Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, b)
	r.at = append(r.at, time.Now())
	return nil
}

func (r *recorder) snapshot() []Batch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Batch(nil), r.batches...)
}

func TestBatcher_GroupsAndDedupes(t *testing.T) {
	events := make(chan Event, 10)
	events <- Event{Type: EventAdded, Path: "/c/suits/b/main.webp"}
	events <- Event{Type: EventAdded, Path: "/c/suits/a/main.webp"}
	events <- Event{Type: EventModified, Path: "/c/suits/b/main.webp"}
	close(events)

	var rec recorder
	err := NewBatcher(discardLogger(), time.Hour, 0).Run(context.Background(), events, rec.handle)
	require.NoError(t, err)

	batches := rec.snapshot()
	require.Len(t, batches, 1, "closing the channel flushes without waiting")
	assert.Equal(t, []string{"/c/suits/a/main.webp", "/c/suits/b/main.webp"}, batches[0].Paths())
	assert.Equal(t, EventModified, batches[0][1].Type, "last event for a path wins")
}

func TestBatcher_QuietPeriodFlush(t *testing.T) {
	events := make(chan Event)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rec recorder
	done := make(chan error, 1)
	go func() {
		done <- NewBatcher(discardLogger(), 20*time.Millisecond, 0).Run(ctx, events, rec.handle)
	}()

	events <- Event{Path: "/c/one.webp"}
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	events <- Event{Path: "/c/two.webp"}
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, []string{"/c/two.webp"}, rec.snapshot()[1].Paths())
}

func TestBatcher_Throttles(t *testing.T) {
	events := make(chan Event)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rec recorder
	go func() {
		_ = NewBatcher(discardLogger(), 5*time.Millisecond, 150*time.Millisecond).Run(ctx, events, rec.handle)
	}()

	events <- Event{Path: "/c/one.webp"}
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	events <- Event{Path: "/c/two.webp"}
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, 2*time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	gap := rec.at[1].Sub(rec.at[0])
	rec.mu.Unlock()
	assert.GreaterOrEqual(t, gap, 100*time.Millisecond)
}

func TestBatcher_HandlerErrorKeepsRunning(t *testing.T) {
	events := make(chan Event, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 2)
	handle := func(context.Context, Batch) error {
		calls <- struct{}{}
		return errors.New("export failed")
	}

	go func() {
		_ = NewBatcher(discardLogger(), 5*time.Millisecond, 0).Run(ctx, events, handle)
	}()

	events <- Event{Path: "/c/one.webp"}
	<-calls
	events <- Event{Path: "/c/two.webp"}

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("batcher stopped after handler error")
	}
}
