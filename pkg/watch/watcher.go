package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"vocabtools/vocabcmp/pkg/diag"
)

// DefaultDebounceInterval is the quiet period after a file change before
// the callback fires.
const DefaultDebounceInterval = 100 * time.Millisecond

// Watcher watches a fixed set of input files and triggers a callback when
// any of them change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	reporter diag.Reporter
	debounce *Debouncer

	// paths holds the absolute paths of the watched files.
	paths map[string]struct{}
}

// New creates a watcher over the given files. The debounce interval
// defaults to DefaultDebounceInterval when zero.
func New(files []string, debounce time.Duration, reporter diag.Reporter) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		reporter: reporter,
		debounce: NewDebouncer(debounce),
		paths:    make(map[string]struct{}, len(files)),
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve %q: %w", f, err)
		}
		w.paths[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
	}

	return w, nil
}

// Watch blocks until ctx is cancelled, invoking onChange (debounced) every
// time one of the watched files changes. Errors from onChange are reported
// and watching continues.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	defer w.Close()

	w.reporter.Infof("watching %d files for changes", len(w.paths))

	for {
		select {
		case <-ctx.Done():
			w.reporter.Infof("watch mode stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.shouldProcessEvent(event) {
				continue
			}

			w.debounce.Trigger(func() {
				w.reporter.Infof("input changed (%s %s), re-running comparison",
					event.Op.String(), event.Name)
				if err := onChange(); err != nil {
					w.reporter.Warnf("re-run failed: %v", err)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			// Continue watching despite errors
			w.reporter.Warnf("file watcher error: %v", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.debounce.Stop()
	return w.watcher.Close()
}

// shouldProcessEvent reports whether the event touches one of the watched
// files with an operation worth reacting to.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, watched := w.paths[abs]
	return watched
}

// Debouncer collects rapid events and invokes the callback only after a
// quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopped  bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger arms the debouncer with a new event. The callback fires after
// the debounce interval unless another event arrives first.
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

	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

// Stop cancels any pending callback. The debouncer cannot be reused.
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
