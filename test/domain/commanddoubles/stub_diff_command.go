//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// StubDiffCommand implements commands.Diff, writing Output to the writer.
type StubDiffCommand struct {
	Output string
	Err    error
	// spy
	Received *entities.Settings
}

var _ commands.Diff = (*StubDiffCommand)(nil)

func (s *StubDiffCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	out io.Writer,
) (*entities.RunReport, error) {
	s.Received = settings
	if s.Err != nil {
		return nil, s.Err
	}
	if _, err := io.WriteString(out, s.Output); err != nil {
		return nil, err
	}
	return &entities.RunReport{}, nil
}
