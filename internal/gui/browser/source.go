package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"

	"orthoview/internal/logger"
)

var (
	ErrNotImage  = errors.New("not a whitelisted image file")
	ErrEmptyFile = errors.New("image file is empty")
	ErrNotFound  = errors.New("image file not found")
)

// Entry is one visible node of the tree.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// Source lists directories and whitelisted files below a movable root.
type Source struct {
	filter Filter
	home   string
	root   string
	logger logger.Logger
}

// NewSource roots the tree at home, which also becomes the target of
// NavigateHome.
func NewSource(home string, filter Filter, log logger.Logger) *Source {
	if log == nil {
		log = logger.Nop{}
	}
	home = filepath.Clean(home)
	return &Source{filter: filter, home: home, root: home, logger: log}
}

func (s *Source) Filter() Filter { return s.filter }
func (s *Source) Root() string   { return s.root }
func (s *Source) Home() string   { return s.home }

// SetRoot moves the root to dir, which must be an existing directory.
func (s *Source) SetRoot(dir string) error {
	dir = filepath.Clean(dir)
	if !s.IsDir(dir) {
		return fmt.Errorf("%s is not a directory", dir)
	}
	s.root = dir
	return nil
}

// NavigateUp moves the root to its parent. It reports false at the
// filesystem root.
func (s *Source) NavigateUp() bool {
	parent := filepath.Dir(s.root)
	if parent == s.root {
		return false
	}
	s.root = parent
	s.logger.Debug("FileBrowser", "navigated up", map[string]interface{}{"root": s.root})
	return true
}

func (s *Source) NavigateHome() {
	s.root = s.home
	s.logger.Debug("FileBrowser", "navigated home", map[string]interface{}{"root": s.root})
}

func (s *Source) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Children lists dir: directories first, then whitelisted files, each
// sorted by name without regard to case. Hidden entries are skipped.
func (s *Source) Children(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var dirs, files []Entry
	for _, item := range items {
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)

		isDir := item.IsDir()
		if item.Type()&os.ModeSymlink != 0 {
			isDir = s.IsDir(path)
		}

		switch {
		case isDir:
			dirs = append(dirs, Entry{Path: path, Name: name, IsDir: true})
		case s.filter.Accepts(name):
			files = append(files, Entry{Path: path, Name: name})
		}
	}

	byName := func(list []Entry) {
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
	}
	byName(dirs)
	byName(files)
	return append(dirs, files...), nil
}

// Validate checks that path is a non-empty whitelisted regular file.
func (s *Source) Validate(path string) error {
	if !s.filter.Accepts(path) {
		return fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return nil
}

// PicturesDir returns the user's pictures directory, falling back to the
// home directory when it does not exist.
func PicturesDir() string {
	home, err := homedir.Dir()
	if err != nil {
		home = string(filepath.Separator)
	}

	candidates := []string{}
	if xdg := os.Getenv("XDG_PICTURES_DIR"); xdg != "" {
		if expanded, err := homedir.Expand(os.ExpandEnv(xdg)); err == nil {
			candidates = append(candidates, expanded)
		}
	}
	candidates = append(candidates, filepath.Join(home, "Pictures"))

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return home
}

func parentDir(path string) string {
	return filepath.Dir(path)
}
