package app

import (
	"fyne.io/fyne/v2"

	"orthoview/internal/logger"
	"orthoview/internal/session"
	"orthoview/internal/shutdown"
)

// Lifecycle persists the window geometry and tears components down when
// the window closes.
type Lifecycle struct {
	window   fyne.Window
	store    *session.Store
	restored session.WindowState
	shutdown *shutdown.Manager
	logger   logger.Logger

	final      session.WindowState
	isShutdown bool
}

// NewLifecycle registers the session save with sm. Steps run in reverse
// registration order, so the session is written before anything
// registered earlier is stopped.
func NewLifecycle(window fyne.Window, store *session.Store, restored session.WindowState, sm *shutdown.Manager, log logger.Logger) *Lifecycle {
	l := &Lifecycle{
		window:   window,
		store:    store,
		restored: restored,
		shutdown: sm,
		logger:   log,
	}
	sm.Register("session", shutdown.Func(l.saveSession))
	return l
}

// Geometry is the state written on close. fyne does not report the
// window position, so Left and Top carry over what was loaded.
func (l *Lifecycle) Geometry() session.WindowState {
	size := l.window.Canvas().Size()
	return session.WindowState{
		Left:   l.restored.Left,
		Top:    l.restored.Top,
		Width:  int(size.Width + 0.5),
		Height: int(size.Height + 0.5),
	}
}

// Shutdown captures the geometry, then runs every registered step. It
// runs once, must be called on the UI thread and returns after the
// session file is written.
func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	l.final = l.Geometry()
	l.shutdown.Shutdown()

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) saveSession() {
	if err := l.store.Save(l.final); err != nil {
		l.logger.Error("Lifecycle", err, map[string]interface{}{
			"path": l.store.Path(),
		})
		return
	}
	l.logger.Debug("Lifecycle", "session saved", map[string]interface{}{
		"width":  l.final.Width,
		"height": l.final.Height,
	})
}

// Close shuts down and closes the window.
func (l *Lifecycle) Close() {
	l.Shutdown()
	l.window.Close()
}
