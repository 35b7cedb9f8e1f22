// Package watch calls back when a configuration file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is invoked after the watched file settled. Errors are logged
// and do not stop the watcher.
type ChangeFunc func(ctx context.Context) error

// Watcher monitors a single file. The containing directory is watched
// because editors often replace files by rename.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc
	watcher  *fsnotify.Watcher
}

// New creates a watcher for path. A non-positive debounce selects DefaultDebounce.
func New(path string, debounce time.Duration, onChange ChangeFunc) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: absPath, debounce: debounce, onChange: onChange, watcher: fw}, nil
}

// Run blocks until ctx is cancelled, invoking the change callback once per
// settled burst of writes. It closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}
	slog.Info("Watching configuration", logfields.Path(w.path))

	name := filepath.Base(w.path)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Remove) {
				slog.Warn("Config file removed", logfields.Path(event.Name))
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("Config file change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.onChange(ctx); err != nil {
				slog.Error("Failed to apply configuration change", logfields.Path(w.path), logfields.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}
