package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"orthoview/internal/gui/browser"
	"orthoview/internal/logger"
	"orthoview/internal/models"
	"orthoview/internal/pipeline"
)

// State is the viewer's top-level mode.
type State int

const (
	NoImage State = iota
	ImageShown
)

func (s State) String() string {
	switch s {
	case NoImage:
		return "NoImage"
	case ImageShown:
		return "ImageShown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Preparer turns a path into a display-ready buffer.
type Preparer interface {
	Prepare(path string) (*models.ImageBuffer, error)
}

// Display receives rendered buffers.
type Display interface {
	Show(buf *models.ImageBuffer)
}

// UI is the part of the window the shell drives directly.
type UI interface {
	ShowError(title string, err error)
	ShowOpenDialog()
	SetTitle(path string)
}

// Shell routes open requests through the pipeline and keeps the selected
// path. A failed open leaves state, path and display untouched.
type Shell struct {
	preparer Preparer
	display  Display
	ui       UI
	logger   logger.Logger

	state        State
	selectedPath string
}

func NewShell(preparer Preparer, display Display, ui UI, log logger.Logger) *Shell {
	if log == nil {
		log = logger.Nop{}
	}
	return &Shell{
		preparer: preparer,
		display:  display,
		ui:       ui,
		logger:   log,
		state:    NoImage,
	}
}

func (s *Shell) State() State { return s.state }

func (s *Shell) SelectedPath() string { return s.selectedPath }

// OpenDir is the directory of the shown file, or "" when none is shown.
func (s *Shell) OpenDir() string {
	if s.selectedPath == "" {
		return ""
	}
	return filepath.Dir(s.selectedPath)
}

// Open loads, renders and shows path.
func (s *Shell) Open(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	buf, err := s.preparer.Prepare(path)
	if err != nil {
		s.handleLoadError(path, err)
		return
	}

	s.display.Show(buf)
	s.selectedPath = path
	s.state = ImageShown
	s.ui.SetTitle(path)

	s.logger.Info("Shell", "image shown", map[string]interface{}{
		"path":   path,
		"width":  buf.Width,
		"height": buf.Height,
	})
}

func (s *Shell) handleLoadError(path string, err error) {
	switch {
	case errors.Is(err, pipeline.ErrNotFound):
		s.logger.Warning("Shell", "file not found, asking for another", map[string]interface{}{
			"path": path,
		})
		s.ui.ShowOpenDialog()
	case errors.Is(err, pipeline.ErrEmpty):
		s.ui.ShowError("Image Load Error", fmt.Errorf("image file %s is empty", filepath.Base(path)))
	case errors.Is(err, pipeline.ErrDecode):
		s.ui.ShowError("Image Load Error", fmt.Errorf("image file %s could not be decoded", filepath.Base(path)))
	default:
		s.ui.ShowError("Image Load Error", err)
	}
}

// Rejected handles a browser selection that failed validation. Empty and
// vanished files are treated like the same loader failures; other
// rejections are only logged.
func (s *Shell) Rejected(path string, err error) {
	switch {
	case errors.Is(err, browser.ErrEmptyFile):
		s.handleLoadError(path, fmt.Errorf("%s: %w", path, pipeline.ErrEmpty))
	case errors.Is(err, browser.ErrNotFound):
		s.handleLoadError(path, fmt.Errorf("%s: %w", path, pipeline.ErrNotFound))
	default:
		s.logger.Debug("Shell", "ignoring rejected selection", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}
