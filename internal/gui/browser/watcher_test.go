package browser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsChangedDirectory(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan string, 8)

	w, err := NewWatcher(func(d string) { changed <- d }, nil)
	require.NoError(t, err)
	defer w.Shutdown()

	w.Watch(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.png"), []byte("x"), 0o644))

	select {
	case got := <-changed:
		assert.Equal(t, dir, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherBookkeeping(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	w, err := NewWatcher(func(string) {}, nil)
	require.NoError(t, err)

	w.Watch(a)
	w.Watch(b)
	w.Watch(a)
	assert.ElementsMatch(t, []string{a, b}, w.Watched())

	w.Unwatch(a)
	assert.Equal(t, []string{b}, w.Watched())

	w.UnwatchAll()
	assert.Empty(t, w.Watched())

	w.Shutdown()
	w.Shutdown()
	w.Watch(a)
	assert.Empty(t, w.Watched())
}
