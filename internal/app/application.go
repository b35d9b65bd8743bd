package app

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"orthoview/internal/config"
	"orthoview/internal/gui"
	"orthoview/internal/gui/browser"
	"orthoview/internal/gui/plot"
	"orthoview/internal/logger"
	"orthoview/internal/pipeline"
	"orthoview/internal/session"
	"orthoview/internal/shutdown"
)

const (
	AppID         = "io.github.orthoview"
	AppVersion    = "1.0.0"
	DefaultWidth  = 1100
	DefaultHeight = 700
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	guiManager *gui.Manager
	canvas     *plot.Canvas
	panel      *browser.Panel
	watcher    *browser.Watcher
	shell      *Shell
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager

	initialPath string
}

// NewApplication builds the viewer on a fresh fyne application.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return New(app.NewWithID(AppID), cfg, log)
}

// New wires every component onto fyneApp.
func New(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.Nop{}
	}

	window := fyneApp.NewWindow(gui.AppName)
	window.SetMaster()

	store := session.NewStore(cfg.SessionFile, log)
	state, restored := store.Load()
	if restored && state.Width > 0 && state.Height > 0 {
		window.Resize(fyne.NewSize(float32(state.Width), float32(state.Height)))
	} else {
		window.Resize(fyne.NewSize(DefaultWidth, DefaultHeight))
		window.CenterOnScreen()
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"session_file":  store.Path(),
		"geometry_seen": restored,
	})

	coordinator := pipeline.NewCoordinator(pipeline.NewLoader(log), pipeline.NewProcessor(log), log)

	canvas := plot.NewCanvas(log)

	root := cfg.StartDir
	if root == "" {
		root = browser.PicturesDir()
	}
	filter := browser.DefaultFilter()
	panel := browser.NewPanel(browser.NewSource(root, filter, log), log)

	guiManager := gui.NewManager(window, canvas, panel, filter, log)
	shell := NewShell(coordinator, canvas, guiManager, log)
	shutdownMgr := shutdown.NewManager(log)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		guiManager: guiManager,
		canvas:     canvas,
		panel:      panel,
		shell:      shell,
		shutdown:   shutdownMgr,
	}

	watcher, err := browser.NewWatcher(func(dir string) {
		fyne.Do(func() { panel.Invalidate(dir) })
	}, log)
	if err != nil {
		log.Warning("Application", "file watching unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		a.watcher = watcher
		panel.AttachWatcher(watcher)
		shutdownMgr.Register("watcher", watcher)
	}
	shutdownMgr.Register("gui", guiManager)

	a.lifecycle = NewLifecycle(window, store, state, shutdownMgr, log)
	a.setupHandlers()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"browser_root": root,
	})
	return a, nil
}

func (a *Application) setupHandlers() {
	a.panel.OnFileChosen(a.shell.Open)
	a.panel.OnRejected(a.shell.Rejected)

	a.guiManager.SetOpenHandler(a.shell.Open)
	a.guiManager.SetLocationProvider(func() string {
		if dir := a.shell.OpenDir(); dir != "" {
			return dir
		}
		return a.panel.Root()
	})

	a.canvas.OnClick(func(pos *plot.PixelPos) {
		if pos == nil {
			a.logger.Debug("Application", "click outside image", nil)
			return
		}
		a.logger.Debug("Application", "pixel clicked", map[string]interface{}{
			"x": pos.X,
			"y": pos.Y,
		})
	})
}

// OpenAtStartup queues path to be shown once the window is up.
func (a *Application) OpenAtStartup(path string) {
	a.initialPath = path
}

func (a *Application) Shell() *Shell { return a.shell }

func (a *Application) Run() error {
	a.window.SetCloseIntercept(a.lifecycle.Close)
	a.shutdown.Listen(func(os.Signal) {
		fyne.Do(a.lifecycle.Close)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	if a.initialPath != "" {
		a.shell.Open(a.initialPath)
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
