package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, opts Options, roots ...string) *Watcher {
	t.Helper()

	w, err := New(discardLogger(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	for _, root := range roots {
		require.NoError(t, w.Watch(root))
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go w.Start(ctx) //nolint:errcheck // Test goroutine

	return w
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case event := <-w.Events():
		return event
	case err := <-w.Errors():
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}
	return Event{}
}

func assertNoEvent(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event: %+v", event)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNew(t *testing.T) {
	w, err := New(discardLogger(), Options{})
	require.NoError(t, err)
	require.NotNil(t, w)

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop(), "second stop is a no-op")
}

func TestWatcher_WatchRequiresDirectory(t *testing.T) {
	w, err := New(discardLogger(), Options{})
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	dir := t.TempDir()
	assert.NoError(t, w.Watch(dir))
	assert.Error(t, w.Watch(filepath.Join(dir, "missing")))

	file := filepath.Join(dir, "main.webp")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Error(t, w.Watch(file))
}

func TestWatcher_FileCreation(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, Options{SettleDelay: 50 * time.Millisecond, Extensions: []string{".webp"}}, dir)

	file := filepath.Join(dir, "main.webp")
	require.NoError(t, os.WriteFile(file, []byte("image content"), 0o644))

	event := nextEvent(t, w)
	assert.Equal(t, EventAdded, event.Type)
	assert.Equal(t, file, event.Path)
	assert.Equal(t, int64(13), event.Size)
}

func TestWatcher_ModifyKnownFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.webp")
	require.NoError(t, os.WriteFile(file, []byte("v1"), 0o644))

	w := startWatcher(t, Options{SettleDelay: 50 * time.Millisecond}, dir)

	require.NoError(t, os.WriteFile(file, []byte("version two"), 0o644))

	event := nextEvent(t, w)
	assert.Equal(t, EventModified, event.Type)
	assert.Equal(t, file, event.Path)
}

func TestWatcher_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, Options{SettleDelay: 50 * time.Millisecond, Extensions: []string{".webp", ".jpg"}}, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	image := filepath.Join(dir, "side.jpg")
	require.NoError(t, os.WriteFile(image, []byte("x"), 0o644))

	assert.Equal(t, image, nextEvent(t, w).Path)
	assertNoEvent(t, w)
}

func TestWatcher_FileDeletion(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.webp")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0o644))

	w := startWatcher(t, Options{}, dir)

	require.NoError(t, os.Remove(file))

	event := nextEvent(t, w)
	assert.Equal(t, EventRemoved, event.Type)
	assert.Equal(t, file, event.Path)
}

func TestWatcher_NewProductDirectory(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, Options{SettleDelay: 50 * time.Millisecond}, dir)

	product := filepath.Join(dir, "suits", "navy-suit")
	require.NoError(t, os.MkdirAll(product, 0o755))
	time.Sleep(100 * time.Millisecond)

	file := filepath.Join(product, "main.webp")
	require.NoError(t, os.WriteFile(file, []byte("image"), 0o644))

	event := nextEvent(t, w)
	assert.Equal(t, EventAdded, event.Type)
	assert.Equal(t, file, event.Path)
}

func TestWatcher_IgnoreHidden(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, Options{IgnoreHidden: true, SettleDelay: 50 * time.Millisecond}, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.webp"), []byte("secret"), 0o644))
	normal := filepath.Join(dir, "normal.webp")
	require.NoError(t, os.WriteFile(normal, []byte("content"), 0o644))

	assert.Equal(t, normal, nextEvent(t, w).Path)
	assertNoEvent(t, w)
}

func TestWatcher_StopClosesChannels(t *testing.T) {
	w, err := New(discardLogger(), Options{})
	require.NoError(t, err)
	require.NoError(t, w.Stop())

	_, ok := <-w.Events()
	assert.False(t, ok)
	_, ok = <-w.Errors()
	assert.False(t, ok)
}
