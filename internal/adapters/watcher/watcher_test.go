package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabicons/internal/adapters/watcher"
	"go.trai.ch/tabicons/internal/core/domain"
)

func nextChange(t *testing.T, w *watcher.Watcher) []string {
	t.Helper()

	got := make(chan []string, 1)
	go func() {
		for paths := range w.Changes() {
			got <- paths
			return
		}
		close(got)
	}()

	select {
	case paths := <-got:
		return paths
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change")
		return nil
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "tabicons.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("version: \"1\"\n"), 0o600))

	w := watcher.NewWatcher(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background(), dir))
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(manifest, []byte("version: \"1\"\nstyle: smooth\n"), 0o600))

	assert.Contains(t, nextChange(t, w), manifest)
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w := watcher.NewWatcher(0)

	err := w.Start(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, domain.ErrWatchFailed)
	assert.NoError(t, w.Stop())
}

func TestWatcher_StartTwice(t *testing.T) {
	w := watcher.NewWatcher(0)
	require.NoError(t, w.Start(context.Background(), t.TempDir()))
	t.Cleanup(func() { _ = w.Stop() })

	assert.ErrorIs(t, w.Start(context.Background(), t.TempDir()), domain.ErrWatchFailed)
}

func TestWatcher_ChangesEndOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := watcher.NewWatcher(0)
	require.NoError(t, w.Start(ctx, t.TempDir()))

	ended := make(chan struct{})
	go func() {
		for range w.Changes() {
		}
		close(ended)
	}()

	cancel()
	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("changes did not end after cancel")
	}
}

func TestWatcher_ChangesBeforeStart(t *testing.T) {
	w := watcher.NewWatcher(0)
	for range w.Changes() {
		t.Fatal("unexpected change")
	}
}
