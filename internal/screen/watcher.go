package screen

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// InputWatcher notices external changes to the input file while a
// session is running, so the user can be warned that the copy they are
// screening has drifted from disk.
type InputWatcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	program   *programRef
	logger    *zap.Logger
	done      chan struct{}

	debounceMu sync.Mutex
	debounce   map[string]*time.Timer
}

// NewInputWatcher starts watching the directory holding path. Watching
// the directory rather than the file keeps the watch alive across
// atomic replaces (write tmp, rename over target), which editors and
// export tools commonly do.
func NewInputWatcher(path string, program *programRef, logger *zap.Logger) (*InputWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	w := &InputWatcher{
		path:      path,
		fsWatcher: fsWatcher,
		program:   program,
		logger:    logger,
		done:      make(chan struct{}),
		debounce:  make(map[string]*time.Timer),
	}
	go w.processEvents()
	return w, nil
}

// Stop stops the watcher.
func (w *InputWatcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *InputWatcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Debug("watcher error", zap.Error(err))
			w.program.Send(WatchErrorMsg{Err: err})
		}
	}
}

func (w *InputWatcher) handleEvent(event fsnotify.Event) {
	// Rename matters: atomic replaces surface as Rename on the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	w.debounceEvent(event.Name, func() {
		w.logger.Debug("input file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
		w.program.Send(InputChangedMsg{Path: event.Name})
	})
}

// debounceEvent collapses the burst of events a single save produces.
func (w *InputWatcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}
