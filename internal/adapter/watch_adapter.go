package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	m "drill.dev/pkg/drill/internal/model"
)

// defaultWatchDebounce coalesces the burst of events editors emit on save so
// one save triggers one regrade.
const defaultWatchDebounce = 100 * time.Millisecond

// WatchAdapter notifies the workflow when task sources change on disk.
type WatchAdapter interface {
	// Watch blocks until ctx is done, invoking onChange (debounced) every
	// time a file under one of the dirs changes.
	Watch(ctx context.Context, dirs []m.Path, onChange func()) error
}

// FSWatchAdapter implements WatchAdapter on top of fsnotify.
type FSWatchAdapter struct {
	debounce time.Duration
}

// NewFSWatchAdapter constructs an FSWatchAdapter with the default debounce
// delay.
func NewFSWatchAdapter() *FSWatchAdapter {
	return &FSWatchAdapter{
		debounce: defaultWatchDebounce,
	}
}

// Watch blocks until ctx is done. fsnotify does not descend into
// subdirectories, so callers list every directory they care about.
func (a *FSWatchAdapter) Watch(ctx context.Context, dirs []m.Path, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	for _, dir := range dirs {
		if err := watcher.Add(string(dir)); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	var debounceTimer *time.Timer

	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			slog.Debug("source change detected", "path", event.Name, "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(a.debounce, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("watcher error", "error", err)
		}
	}
}
