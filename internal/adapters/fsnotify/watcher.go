// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches a single measurement sheet through its parent directory and
// debounces bursts of events (editors often write several times per save,
// or save by writing a temp file and renaming it over the original).
package fsnotify

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	log      *slog.Logger
	done     chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewWatcher creates a watcher that fires once per quiet period of length
// debounce. A zero debounce fires on every event. log may be nil.
func NewWatcher(debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		fw:       fw,
		debounce: debounce,
		log:      log,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. onChange receives the absolute sheet path.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if err := w.fw.Add(dir); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				w.log.Debug("sheet event", "path", event.Name, "op", event.Op.String())

				// Remove/Rename alone means the file is gone; a rename-over
				// save follows up with Create.
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					w.schedule(absPath, onChange)
				}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				w.log.Warn("watch error", "err", err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule fires onChange after the debounce window, restarting the window
// on every call (trailing edge).
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.debounce <= 0 {
		go onChange(path)
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		stopped := w.stopped
		w.mu.Unlock()
		if !stopped {
			onChange(path)
		}
	})
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	return w.fw.Close()
}
