// Package watcher signals edits to scenario files using fsnotify.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScenarioWatcher = (*Watcher)(nil)

// DefaultDebounceWindow is how long a file must stay quiet before a change is signaled.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher implements ports.ScenarioWatcher.
type Watcher struct {
	logger ports.Logger
	clock  clockwork.Clock
	window time.Duration
}

// New creates a watcher that reports file system errors to logger.
func New(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		clock:  clockwork.NewRealClock(),
		window: DefaultDebounceWindow,
	}
}

// WithClock sets the clock used for debouncing.
func (w *Watcher) WithClock(c clockwork.Clock) *Watcher {
	w.clock = c
	return w
}

// WithWindow sets the debounce window.
func (w *Watcher) WithWindow(d time.Duration) *Watcher {
	w.window = d
	return w
}

// Changes watches the directory holding the scenario file, so edits made by
// writing a temporary file and renaming it over the original are seen too.
func (w *Watcher) Changes(ctx context.Context, path string) (<-chan struct{}, error) {
	file, err := resolve(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	if err := fsw.Add(filepath.Dir(file)); err != nil {
		_ = fsw.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to watch scenario directory"), "path", filepath.Dir(file))
	}

	out := make(chan struct{}, 1)
	d := newDebouncer(w.clock, w.window, func() {
		select {
		case out <- struct{}{}:
		default:
			// A signal is already pending.
		}
	})

	go func() {
		defer close(out)
		defer d.stop()
		defer func() { _ = fsw.Close() }()
		w.loop(ctx, fsw, file, d)
	}()
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, file string, d *debouncer) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if relevant(event, file) {
				d.touch()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

func relevant(event fsnotify.Event, file string) bool {
	if filepath.Clean(event.Name) != file {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// resolve returns the absolute scenario file path for path.
func resolve(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve scenario path"), "path", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", zerr.With(zerr.Wrap(domain.ErrScenarioNotFound, "cannot watch a missing scenario"), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat scenario"), "path", path)
	}
	if info.IsDir() {
		abs = filepath.Join(abs, domain.ScenarioFileName)
	}
	return abs, nil
}
