package tileset

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "set.tiles", twoTiles)

	var calls atomic.Int32
	w, err := Watch(context.Background(), path, func() { calls.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, w.Path())

	writeFile(t, dir, "other.tiles", twoTiles)
	assert.Never(t, func() bool { return calls.Load() > 0 }, 200*time.Millisecond, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(twoTiles+"\n"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherReportsReplacement(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "set.tiles", twoTiles)

	var calls atomic.Int32
	w, err := Watch(context.Background(), path, func() { calls.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	tmp := writeFile(t, dir, "set.tiles.swp", twoTiles)
	require.NoError(t, os.Rename(tmp, path))
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherStopsWithContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "set.tiles", twoTiles)

	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, path, func() {})
	require.NoError(t, err)

	cancel()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	assert.NoError(t, w.Close())
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "set.tiles"), func() {})
	assert.Error(t, err)
}
