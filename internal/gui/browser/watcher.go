package browser

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"orthoview/internal/logger"
)

// Watcher reports directories whose listing changed.
type Watcher struct {
	fs       *fsnotify.Watcher
	onChange func(dir string)
	logger   logger.Logger

	mu      sync.Mutex
	watched map[string]struct{}
	done    chan struct{}
	closed  bool
}

func NewWatcher(onChange func(dir string), log logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop{}
	}

	w := &Watcher{
		fs:       fsw,
		onChange: onChange,
		logger:   log,
		watched:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.onChange(parentDir(event.Name))
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warning("FileWatcher", "watch error", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (w *Watcher) Watch(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if _, ok := w.watched[dir]; ok {
		return
	}
	if err := w.fs.Add(dir); err != nil {
		w.logger.Debug("FileWatcher", "cannot watch directory", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
		return
	}
	w.watched[dir] = struct{}{}
}

func (w *Watcher) Unwatch(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.watched[dir]; !ok {
		return
	}
	delete(w.watched, dir)
	_ = w.fs.Remove(dir)
}

// UnwatchAll drops every watch, used when the tree is re-rooted.
func (w *Watcher) UnwatchAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for dir := range w.watched {
		_ = w.fs.Remove(dir)
	}
	w.watched = make(map[string]struct{})
}

func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.watched))
	for dir := range w.watched {
		out = append(out, dir)
	}
	return out
}

// Shutdown stops the event pump and releases the OS watches.
func (w *Watcher) Shutdown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	if err := w.fs.Close(); err != nil {
		w.logger.Warning("FileWatcher", "close failed", map[string]interface{}{"error": err.Error()})
	}
}
