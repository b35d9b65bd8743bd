// Package browser implements the image file tree shown beside the canvas.
package browser

import (
	"path/filepath"
	"strings"
)

// Whitelist lists the extensions the viewer offers, without dots.
var Whitelist = []string{"tif", "tiff", "png", "jpg"}

// Filter accepts file names whose extension is whitelisted. Matching is
// case-insensitive.
type Filter struct {
	exts []string
	set  map[string]struct{}
}

func NewFilter(exts ...string) Filter {
	f := Filter{exts: exts, set: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		f.set[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return f
}

func DefaultFilter() Filter {
	return NewFilter(Whitelist...)
}

func (f Filter) Accepts(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	_, ok := f.set[strings.ToLower(ext)]
	return ok
}

// Extensions returns dot-prefixed extensions, the form fyne's file
// dialog filter expects.
func (f Filter) Extensions() []string {
	out := make([]string, len(f.exts))
	for i, ext := range f.exts {
		out[i] = "." + ext
	}
	return out
}

// Patterns returns glob patterns such as "*.png".
func (f Filter) Patterns() []string {
	out := make([]string, len(f.exts))
	for i, ext := range f.exts {
		out[i] = "*." + ext
	}
	return out
}
