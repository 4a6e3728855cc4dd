package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	m "testgen.dev/pkg/testgen/internal/model"
)

// SourceWatcher reports contract sources that changed under a root.
type SourceWatcher interface {
	// Watch emits slash-separated paths relative to root for every .sol file
	// that was created or written. Both channels close when ctx is done.
	Watch(ctx context.Context, root m.Path) (<-chan m.Path, <-chan error)
}

const defaultDebounce = 300 * time.Millisecond

// FSNotifySourceWatcher implements SourceWatcher with fsnotify. Rapid saves
// of the same file are collapsed into one event.
type FSNotifySourceWatcher struct {
	debounce time.Duration
}

// NewSourceWatcher creates a watcher with the default debounce window.
func NewSourceWatcher() *FSNotifySourceWatcher {
	return &FSNotifySourceWatcher{debounce: defaultDebounce}
}

// NewSourceWatcherWithDebounce creates a watcher with a custom debounce window.
func NewSourceWatcherWithDebounce(debounce time.Duration) *FSNotifySourceWatcher {
	return &FSNotifySourceWatcher{debounce: debounce}
}

// Watch starts watching root and every directory below it.
func (w *FSNotifySourceWatcher) Watch(ctx context.Context, root m.Path) (<-chan m.Path, <-chan error) {
	changes := make(chan m.Path)
	errs := make(chan error, 1)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		errs <- fmt.Errorf("create watcher: %w", err)

		close(changes)
		close(errs)

		return changes, errs
	}

	if err := addRecursive(watcher, string(root)); err != nil {
		_ = watcher.Close()
		errs <- err

		close(changes)
		close(errs)

		return changes, errs
	}

	go w.loop(ctx, watcher, string(root), changes, errs)

	return changes, errs
}

func (w *FSNotifySourceWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher, root string, changes chan<- m.Path, errs chan<- error) {
	pending := map[string]time.Time{}
	ticker := time.NewTicker(w.debounce)

	defer func() {
		ticker.Stop()

		if err := watcher.Close(); err != nil {
			slog.Error("Failed to close watcher", "root", root, "error", err)
		}

		close(changes)
		close(errs)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create != 0 {
				if err := addRecursive(watcher, event.Name); err != nil {
					slog.Debug("Skipping new path", "path", event.Name, "error", err)
				}
			}

			if !isSourceEvent(event) {
				continue
			}

			pending[event.Name] = time.Now()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			select {
			case errs <- err:
			default:
				slog.Error("Dropped watcher error", "root", root, "error", err)
			}
		case now := <-ticker.C:
			for _, name := range settled(pending, now, w.debounce) {
				rel, err := filepath.Rel(root, name)
				if err != nil {
					slog.Error("Failed to relativise changed path", "path", name, "error", err)
					continue
				}

				select {
				case <-ctx.Done():
					return
				case changes <- m.Path(filepath.ToSlash(rel)):
				}
			}
		}
	}
}

// settled removes and returns, sorted, the entries older than the debounce
// window.
func settled(pending map[string]time.Time, now time.Time, debounce time.Duration) []string {
	var ready []string

	for name, at := range pending {
		if now.Sub(at) >= debounce {
			ready = append(ready, name)
			delete(pending, name)
		}
	}

	sort.Strings(ready)

	return ready
}

func isSourceEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}

	return strings.HasSuffix(event.Name, ".sol")
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}
