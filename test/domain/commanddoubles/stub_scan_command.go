//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// StubScanCommand implements commands.Scan with canned call sites.
type StubScanCommand struct {
	Sites []entities.CallSite
	Err   error
	// spy
	Received *entities.Settings
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	_ io.Writer,
) ([]entities.CallSite, error) {
	s.Received = settings
	return s.Sites, s.Err
}
