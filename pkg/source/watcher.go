package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DocumentExtensions are the file types that hold mechanism documents.
var DocumentExtensions = []string{".yaml", ".yml", ".json"}

// ErrWatcherRunning is returned when Watch is called twice.
var ErrWatcherRunning = errors.New("watcher already running")

// Watcher re-runs a callback when a configuration changes on disk. Bursts of
// events are collapsed into one call after a quiet period.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce *Debouncer
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for a file or directory. A directory is
// watched recursively, which covers v0 configurations.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		path:     path,
		watcher:  fw,
		debounce: NewDebouncer(debounce),
		logger:   logger.With("component", "source.watcher"),
	}, nil
}

// Watch blocks until ctx is cancelled, calling onChange after each settled
// burst of changes. Errors from onChange are logged and watching continues.
func (w *Watcher) Watch(ctx context.Context, onChange func(ctx context.Context) error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrWatcherRunning
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.debounce.Stop()
		w.watcher.Close()
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	if err := w.add(w.path); err != nil {
		return &SourceError{Source: w.path, Operation: "watch", Cause: err}
	}
	w.logger.Info("watching for changes", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())

			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.add(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			w.debounce.Trigger(func() {
				if err := onChange(ctx); err != nil {
					w.logger.Error("re-validation failed", "error", err)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

// add watches a file's directory, or a directory tree. Editors often
// replace files on save, so files are watched through their parent.
func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && isHidden(p) {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if isHidden(event.Name) {
		return false
	}

	info, err := os.Stat(w.path)
	if err == nil && !info.IsDir() {
		return filepath.Clean(event.Name) == filepath.Clean(w.path)
	}
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}
	return HasDocumentExtension(event.Name)
}

// HasDocumentExtension reports whether path has one of DocumentExtensions.
func HasDocumentExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range DocumentExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// Debouncer runs the latest callback once no new trigger has arrived for
// the interval.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
}

// NewDebouncer creates a debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	cb := d.callback
	d.callback = nil
	stopped := d.stopped
	d.mu.Unlock()

	if cb != nil && !stopped {
		cb()
	}
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
