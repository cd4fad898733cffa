//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// StubPatchCommand implements commands.Patch with a canned report.
type StubPatchCommand struct {
	Report *entities.RunReport
	Err    error

	mu       sync.Mutex
	received []entities.Settings
}

var _ commands.Patch = (*StubPatchCommand)(nil)

func (s *StubPatchCommand) Execute(_ context.Context, settings *entities.Settings) (*entities.RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, *settings)
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Report == nil {
		return &entities.RunReport{}, nil
	}
	return s.Report, nil
}

// Received returns a copy of every settings value passed to Execute.
func (s *StubPatchCommand) Received() []entities.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Settings(nil), s.received...)
}
