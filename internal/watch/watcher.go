package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bioscope-labs/pathway-agent/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last event
// before firing the handler.
const DefaultDebounce = 500 * time.Millisecond

// Handler is invoked with the watched path after each settled change.
type Handler func(path string)

// Watcher re-runs a handler when a single file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
}

// New creates a watcher for path. A non-positive debounce uses
// DefaultDebounce.
func New(path string, debounce time.Duration, handler Handler) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: path, debounce: debounce, handler: handler}
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger.Debug("Watching %s for changes to %s", dir, filepath.Base(w.path))

	return w.run(ctx, fw.Events, fw.Errors)
}

// run is separated from Run so tests can inject event channels.
func (w *Watcher) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	target := filepath.Clean(w.path)

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
			return ctx.Err()

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// Write covers in-place saves, Create covers atomic
			// replace-by-rename saves.
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("Change detected: %s (%s)", event.Name, event.Op)

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-fire:
			timer = nil
			fire = nil
			w.handler(w.path)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
