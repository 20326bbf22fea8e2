package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/internal/watch"
)

func isTxt(name string) bool { return strings.HasSuffix(name, ".txt") }

func TestWatcher_ReportsMatchingWrites(t *testing.T) {
	dir := t.TempDir()
	logger, _ := test.NewNullLogger()
	w, err := watch.NewWatcher(dir, isTxt, 20*time.Millisecond, logger)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.md"), []byte("x"), 0o644))
	target := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(target, []byte("1\n1 1\n"), 0o644))

	select {
	case got := <-w.Changes:
		assert.Equal(t, target, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_ServeStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.NewWatcher(dir, isTxt, 20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	ctx, cancel := context.WithCancel(context.Background())
	seen := make(chan string, 1)
	done := make(chan struct{})
	go func() {
		w.Serve(ctx, func(p string) {
			select {
			case seen <- p:
			default:
			}
		})
		close(done)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1"), 0o644))
	select {
	case <-seen:
	case <-time.After(3 * time.Second):
		t.Fatal("handler not called")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := watch.NewWatcher(filepath.Join(t.TempDir(), "nope"), isTxt, time.Millisecond, nil)
	require.NoError(t, err)
	assert.Error(t, w.Start())
}
