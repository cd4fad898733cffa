// Package watcher notifies about writes to a fixed set of files.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	logger "github.com/sirupsen/logrus"
)

// ChangeHandler is called with the cleaned path of a file that was written.
// Returning an error stops the watcher.
type ChangeHandler func(ctx context.Context, path string) error

// Watcher observes the parent directories of its target files, so files that
// editors replace through rename are still seen.
type Watcher struct {
	fs      *fsnotify.Watcher
	targets map[string]bool
}

// New creates a watcher for the given files. Directories that do not exist are
// skipped with a warning.
func New(paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{fs: fsw, targets: make(map[string]bool, len(paths))}
	dirs := make(map[string]bool)
	for _, p := range paths {
		clean := filepath.Clean(p)
		w.targets[clean] = true

		dir := filepath.Dir(clean)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if addErr := fsw.Add(dir); addErr != nil {
			logger.Warnf("Cannot watch %s: %v", dir, addErr)
		}
	}

	return w, nil
}

// Run blocks until ctx is cancelled or handler fails, calling handler for every
// write or create event on a target file.
func (w *Watcher) Run(ctx context.Context, handler ChangeHandler) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if !w.targets[path] {
				continue
			}
			logger.Debugf("Change detected: %s (%s)", path, event.Op)
			if err := handler(ctx, path); err != nil {
				return err
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("File watcher error: %v", err)
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
