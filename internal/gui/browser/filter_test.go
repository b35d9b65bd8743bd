package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter()

	for _, name := range []string{"a.png", "b.jpg", "c.tif", "d.tiff", "E.PNG", "photo.Tiff"} {
		assert.True(t, f.Accepts(name), name)
	}
	for _, name := range []string{"a.bmp", "b.jpeg", "c.gif", "noext", "png", "archive.png.zip"} {
		assert.False(t, f.Accepts(name), name)
	}
}

func TestFilterForms(t *testing.T) {
	f := DefaultFilter()
	assert.Equal(t, []string{".tif", ".tiff", ".png", ".jpg"}, f.Extensions())
	assert.Equal(t, []string{"*.tif", "*.tiff", "*.png", "*.jpg"}, f.Patterns())
}
