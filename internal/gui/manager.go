// Package gui assembles the main window: the navigation toolbar and open
// action on top, the image canvas in the centre and the file browser on
// the right.
package gui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"orthoview/internal/gui/browser"
	"orthoview/internal/gui/plot"
	"orthoview/internal/logger"
)

const AppName = "OrthoView Lite"

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	canvas     *plot.Canvas
	navigation *plot.NavigationToolbar
	browser    *browser.Panel
	filter     browser.Filter

	openHandler func(path string)
	locationFn  func() string
}

func NewManager(window fyne.Window, canvas *plot.Canvas, panel *browser.Panel, filter browser.Filter, log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	m := &Manager{
		window:     window,
		logger:     log,
		canvas:     canvas,
		navigation: plot.NewNavigationToolbar(canvas),
		browser:    panel,
		filter:     filter,
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"browser_width": browser.PanelWidth,
		"patterns":      filter.Patterns(),
	})
	return m
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	openBar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), m.ShowOpenDialog),
	)
	top := container.NewHBox(openBar, widget.NewSeparator(), m.navigation.GetContainer())

	// the spacer pins the browser column to its fixed width
	spacer := fynecanvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	spacer.SetMinSize(fyne.NewSize(browser.PanelWidth, 0))
	right := container.NewStack(spacer, m.browser.GetContainer())

	return container.NewBorder(top, nil, nil, right, m.canvas)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// SetOpenHandler receives paths confirmed in the open dialog.
func (m *Manager) SetOpenHandler(handler func(path string)) {
	m.openHandler = handler
}

// SetLocationProvider supplies the directory the open dialog starts in.
func (m *Manager) SetLocationProvider(fn func() string) {
	m.locationFn = fn
}

// ShowOpenDialog asks for an image file. Cancelling does nothing.
func (m *Manager) ShowOpenDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError("Open Image File", err)
			return
		}
		if reader == nil {
			m.logger.Debug("GUIManager", "open dialog cancelled", nil)
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			m.logger.Warning("GUIManager", "closing dialog reader failed", map[string]interface{}{
				"path":  path,
				"error": cerr.Error(),
			})
		}
		if m.openHandler != nil {
			m.openHandler(path)
		}
	}, m.window)

	d.SetFilter(storage.NewExtensionFileFilter(m.filter.Extensions()))
	d.SetTitleText("Open Image File")
	if dir := m.location(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		} else {
			m.logger.Debug("GUIManager", "dialog location unavailable", map[string]interface{}{
				"dir":   dir,
				"error": err.Error(),
			})
		}
	}
	d.Show()
}

func (m *Manager) location() string {
	if m.locationFn != nil {
		return m.locationFn()
	}
	return m.browser.Root()
}

// ShowError opens a modal with title as its heading and the error text
// as its message.
func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.NewInformation(title, err.Error(), m.window).Show()
}

// SetTitle shows the name of the open file next to the application name.
func (m *Manager) SetTitle(path string) {
	if path == "" {
		m.window.SetTitle(AppName)
		return
	}
	m.window.SetTitle(filepath.Base(path) + " - " + AppName)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
