//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// StubWatchCommand implements commands.Watch and returns immediately.
type StubWatchCommand struct {
	Err error
	// spy
	Received    *entities.Settings
	CtxCanceled bool
}

var _ commands.Watch = (*StubWatchCommand)(nil)

func (s *StubWatchCommand) Execute(ctx context.Context, settings *entities.Settings) error {
	s.Received = settings
	s.CtxCanceled = ctx.Err() != nil
	return s.Err
}
