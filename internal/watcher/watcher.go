// Package watcher reports changes below the directories of a built file tree.
package watcher

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vvka-141/fstree/internal/files/filesystem"
	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/internal/files/ignore"
	"github.com/vvka-141/fstree/internal/logging"
	"github.com/vvka-141/fstree/internal/tree"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// Config configures a Watcher.
type Config struct {
	Debounce time.Duration // Quiet period before a batch is flushed
	MaxBatch int           // Flush early after this many distinct paths; 0 means no limit
	Ignore   *ignore.Matcher
	Logger   fstree.Logger
}

// Watcher watches every directory of a file tree on the OS filesystem and
// calls OnChange with debounced batches of changed paths.
type Watcher struct {
	root      string
	config    Config
	fs        *filesystem.OSFileSystem
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer

	mu      sync.Mutex
	watched map[string]bool
}

// New creates a Watcher for the tree rooted at root. onChange runs on a
// timer goroutine; batches never overlap.
func New(root string, config Config, onChange func(changed []string)) (*Watcher, error) {
	if config.Debounce <= 0 {
		config.Debounce = fstree.DefaultWatchDebounce
	}
	if config.Ignore == nil {
		config.Ignore = &ignore.Matcher{}
	}
	if config.Logger == nil {
		config.Logger = logging.NewNullLogger()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		root:      root,
		config:    config,
		fs:        filesystem.NewOSFileSystem(),
		fsWatcher: fsWatcher,
		watched:   make(map[string]bool),
	}

	var flushMu sync.Mutex
	w.debouncer = NewDebouncer(config.Debounce, config.MaxBatch, func(paths []string) {
		flushMu.Lock()
		defer flushMu.Unlock()
		config.Logger.Verbose("%d path(s) changed", len(paths))
		onChange(paths)
	})
	return w, nil
}

// Sync makes the watched set equal to the directories of t. Directories that
// vanished from the tree are dropped, new ones are added.
func (w *Watcher) Sync(t *filetree.FileTree) error {
	dirs := make(map[string]bool)
	err := t.Walk(func(n *tree.Node[filetree.Entry]) error {
		if entry := n.Content(); entry.IsDir {
			dirs[entry.Path] = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for dir := range w.watched {
		if !dirs[dir] {
			// fsnotify already dropped directories that were deleted.
			_ = w.fsWatcher.Remove(dir)
			delete(w.watched, dir)
		}
	}
	for dir := range dirs {
		if w.watched[dir] {
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.watched[dir] = true
		w.config.Logger.Verbose("Watching %s", dir)
	}
	return nil
}

// Watched returns the number of watched directories.
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watched)
}

// Run dispatches events until ctx is done or the watcher is closed.
// Cancellation is a normal shutdown and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Error("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod || w.ignored(event.Name) {
		return
	}
	w.config.Logger.Verbose("%s %s", event.Op, event.Name)

	// Watch new directories right away so changes inside them are not lost
	// before the next Sync.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.mu.Lock()
			if !w.watched[event.Name] && w.fsWatcher.Add(event.Name) == nil {
				w.watched[event.Name] = true
			}
			w.mu.Unlock()
		}
	}

	w.debouncer.Add(event.Name)
}

func (w *Watcher) ignored(path string) bool {
	rel, err := w.fs.Rel(w.root, path)
	if err != nil {
		return false
	}
	return w.config.Ignore.MatchPath(rel)
}

// Close stops the debouncer and releases the underlying watcher.
func (w *Watcher) Close() error {
	w.debouncer.Stop()
	return w.fsWatcher.Close()
}
