// Package watch re-runs a callback whenever one file on disk changes. It
// backs the CLI's watch mode: edit the framework file, see the answer to the
// same query again.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a single file and invokes a callback after its contents
// change. Events are debounced because editors often fire several filesystem
// events per save, and some replace the file via rename, so the watch is on
// the containing directory rather than the file itself.
type Watcher struct {
	path     string // absolute path of the watched file
	debounce time.Duration
	onChange func()

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for path that calls onChange, debounced by the given
// interval, every time the file is written, created, or replaced. The
// watcher is inert until Start is called.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 50 * time.Millisecond
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		watcher:  fsw,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins delivering change notifications.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and releases its resources. Safe to call more than
// once; no callback fires after Stop returns.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
}

// watchLoop processes filesystem events until the watcher is stopped.
func (w *Watcher) watchLoop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	pending := false

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending = true
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if !pending {
				continue
			}
			pending = false
			w.onChange()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant reports whether event concerns the watched file. The watch covers
// the whole directory, so sibling files are filtered out here. Rename and
// create both matter: atomic saves write a temp file and rename it over the
// original.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}
