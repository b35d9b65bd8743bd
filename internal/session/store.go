// Package session persists the main window geometry between runs.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"orthoview/internal/logger"
)

// WindowState is the saved window geometry.
type WindowState struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// document mirrors the on-disk layout: a single [window] table.
type document struct {
	Window windowSection `toml:"window"`
}

// windowSection uses pointers so that absent keys can be told apart
// from zero values.
type windowSection struct {
	Left   *int `toml:"win_left"`
	Top    *int `toml:"win_top"`
	Width  *int `toml:"win_width"`
	Height *int `toml:"win_height"`
}

type savedDocument struct {
	Window savedWindow `toml:"window"`
}

type savedWindow struct {
	Left   int `toml:"win_left"`
	Top    int `toml:"win_top"`
	Width  int `toml:"win_width"`
	Height int `toml:"win_height"`
}

func (w windowSection) complete() bool {
	return w.Left != nil && w.Top != nil && w.Width != nil && w.Height != nil
}

// Store reads and writes the session file at a fixed path.
type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop{}
	}
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved geometry. ok is false when the file is missing,
// unreadable, or lacks any of the four keys; callers then keep the
// toolkit's default placement.
func (s *Store) Load() (state WindowState, ok bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warning("SessionStore", "session file unreadable", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return WindowState{}, false
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		s.logger.Warning("SessionStore", "session file malformed, using defaults", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return WindowState{}, false
	}

	if !doc.Window.complete() {
		s.logger.Debug("SessionStore", "window geometry incomplete, using defaults", map[string]interface{}{
			"path": s.path,
		})
		return WindowState{}, false
	}

	state = WindowState{
		Left:   *doc.Window.Left,
		Top:    *doc.Window.Top,
		Width:  *doc.Window.Width,
		Height: *doc.Window.Height,
	}
	s.logger.Debug("SessionStore", "window geometry loaded", map[string]interface{}{
		"left":   state.Left,
		"top":    state.Top,
		"width":  state.Width,
		"height": state.Height,
	})
	return state, true
}

// Save writes all four keys in one pass, replacing the file.
func (s *Store) Save(state WindowState) error {
	doc := savedDocument{Window: savedWindow(state)}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	s.logger.Info("SessionStore", "window geometry saved", map[string]interface{}{
		"path":   s.path,
		"width":  state.Width,
		"height": state.Height,
	})
	return nil
}
