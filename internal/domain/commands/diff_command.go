package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/credpatch/internal/diff"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// Diff is the interface for the diff command.
type Diff interface {
	Execute(ctx context.Context, settings *entities.Settings, out io.Writer) (*entities.RunReport, error)
}

// DiffCommand previews a patch run: it runs the same pipeline without writing
// anything and prints a unified diff for every file that would change.
type DiffCommand struct {
	patch Patch
}

// NewDiffCommand creates a new DiffCommand on top of the patch command.
func NewDiffCommand(patch Patch) *DiffCommand {
	return &DiffCommand{patch: patch}
}

// Execute runs the dry run and writes the diffs to out.
func (it *DiffCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	out io.Writer,
) (*entities.RunReport, error) {
	preview := *settings
	preview.DryRun = true

	report, err := it.patch.Execute(ctx, &preview)
	if err != nil {
		return report, err
	}

	for _, f := range report.Files {
		if f.Status != entities.FileStatusPatched {
			continue
		}
		stats := diff.Summarize(f.Original, f.Patched)
		logger.Debugf("%s: +%d -%d lines", f.Path, stats.Added, stats.Removed)
		if _, writeErr := fmt.Fprint(out, diff.Render(f.Path, f.Original, f.Patched, diff.DefaultContext)); writeErr != nil {
			return report, fmt.Errorf("failed to write diff: %w", writeErr)
		}
	}

	return report, nil
}
