package ephemeris

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"sq9/internal/logging"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Loader builds a table from a data file.
type Loader func(path string) (*Table, error)

// DefaultDebounce collapses the burst of events an editor or exporter emits
// while rewriting a file.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads the ephemeris when its data file changes and hands each new
// table to a callback. A failed reload is logged and the old table stays in use.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	load     Loader
	onReload func(*Table)
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool

	reloads int
	failures int
}

// NewWatcher creates a watcher for path. The parent directory is watched so
// that atomic replace-by-rename is seen.
func NewWatcher(path string, load Loader, onReload func(*Table)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		load:     load,
		onReload: onReload,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce changes the quiet period before a reload. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return errors.Wrapf(err, "watch %s", filepath.Dir(w.path))
	}
	logging.Watch("watching %s", w.path)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryWatch).Error("close watcher", zap.Error(err))
	}
	logging.Watch("stopped")
}

// Stats returns the number of successful and failed reloads.
func (w *Watcher) Stats() (reloads, failures int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads, w.failures
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	w.mu.Lock()
	debounce := w.debounce
	w.mu.Unlock()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			logging.Get(logging.CategoryWatch).Debug("change", zap.String("op", ev.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryWatch).Warn("watcher error", zap.Error(err))
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	t, err := w.load(w.path)
	w.mu.Lock()
	if err != nil {
		w.failures++
	} else {
		w.reloads++
	}
	w.mu.Unlock()

	if err != nil {
		logging.Get(logging.CategoryWatch).Warn("reload failed, keeping previous table",
			zap.String("path", w.path), zap.Error(err))
		return
	}
	logging.Watch("reloaded %s: %d days", w.path, t.Len())
	if w.onReload != nil {
		w.onReload(t)
	}
}
