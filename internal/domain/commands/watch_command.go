package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/watcher"
)

// Watch is the interface for the watch command.
type Watch interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// WatchCommand runs the patch command once and again after every write to a
// configured file, until the context is cancelled.
//
// Runs triggered by its own writes find the file saturated or patch it to
// identical text, which is not written, so the loop settles.
type WatchCommand struct {
	patch Patch
}

// NewWatchCommand creates a new WatchCommand on top of the patch command.
func NewWatchCommand(patch Patch) *WatchCommand {
	return &WatchCommand{patch: patch}
}

// Execute blocks until ctx is done or a patch run fails.
func (it *WatchCommand) Execute(ctx context.Context, settings *entities.Settings) error {
	if _, err := it.patch.Execute(ctx, settings); err != nil {
		return err
	}

	paths := make([]string, 0, len(settings.Files))
	for _, f := range settings.Files {
		paths = append(paths, settings.ResolvePath(f))
	}

	w, err := watcher.New(paths)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			logger.Warnf("Failed to close file watcher: %v", closeErr)
		}
	}()

	logger.Infof("Watching %d files for changes (Ctrl+C to stop)", len(paths))
	return w.Run(ctx, func(ctx context.Context, path string) error {
		logger.Infof("Change detected in %s, re-running", path)
		_, runErr := it.patch.Execute(ctx, settings)
		return runErr
	})
}
