package browser

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"b.png":          "x",
		"A.jpg":          "x",
		"c.tif":          "x",
		"d.tiff":         "x",
		"skip.bmp":       "x",
		"notes.txt":      "x",
		".hidden.png":    "x",
		"empty.png":      "",
		"zeta/inner.png": "x",
		"Alpha/keep.jpg": "x",
		".cache/x.png":   "x",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestChildrenFiltersAndOrders(t *testing.T) {
	root := makeTree(t)
	s := NewSource(root, DefaultFilter(), nil)

	entries, err := s.Children(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "zeta", "A.jpg", "b.png", "c.tif", "d.tiff", "empty.png"}, names(entries))
	assert.True(t, entries[0].IsDir)
	assert.False(t, entries[2].IsDir)
	assert.NotContains(t, names(entries), "skip.bmp")
}

func TestChildrenOfMissingDirectory(t *testing.T) {
	s := NewSource(t.TempDir(), DefaultFilter(), nil)
	_, err := s.Children(filepath.Join(s.Root(), "absent"))
	assert.Error(t, err)
}

func TestNavigation(t *testing.T) {
	root := makeTree(t)
	s := NewSource(filepath.Join(root, "zeta"), DefaultFilter(), nil)

	require.True(t, s.NavigateUp())
	assert.Equal(t, root, s.Root())

	s.NavigateHome()
	assert.Equal(t, filepath.Join(root, "zeta"), s.Root())

	require.NoError(t, s.SetRoot(string(filepath.Separator)))
	assert.False(t, s.NavigateUp())
	assert.Equal(t, string(filepath.Separator), s.Root())

	assert.Error(t, s.SetRoot(filepath.Join(root, "b.png")))
}

func TestValidate(t *testing.T) {
	root := makeTree(t)
	s := NewSource(root, DefaultFilter(), nil)

	assert.NoError(t, s.Validate(filepath.Join(root, "b.png")))
	assert.ErrorIs(t, s.Validate(filepath.Join(root, "empty.png")), ErrEmptyFile)
	assert.ErrorIs(t, s.Validate(filepath.Join(root, "skip.bmp")), ErrNotImage)

	gone := filepath.Join(root, "gone.png")
	err := s.Validate(gone)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, 1, strings.Count(err.Error(), gone), "path appears once: %s", err)
}

func TestPicturesDirPrefersXDG(t *testing.T) {
	pictures := t.TempDir()
	t.Setenv("XDG_PICTURES_DIR", pictures)
	assert.Equal(t, pictures, PicturesDir())

	t.Setenv("XDG_PICTURES_DIR", filepath.Join(pictures, "missing"))
	assert.NotEqual(t, filepath.Join(pictures, "missing"), PicturesDir())
}
