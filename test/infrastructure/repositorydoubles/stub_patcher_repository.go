//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

// StubPatcherRepository implements repositories.PatcherRepository as a configurable spy.
type StubPatcherRepository struct {
	// --- identity ---
	PatcherName string

	// --- Patch ---
	Transform func(content string) string // nil returns content unchanged
	PatchErr  error
	// spy: inputs received
	Inputs []string
}

var _ repositories.PatcherRepository = (*StubPatcherRepository)(nil)

func (s *StubPatcherRepository) Name() string { return s.PatcherName }

func (s *StubPatcherRepository) Patch(_ context.Context, content string) (string, error) {
	s.Inputs = append(s.Inputs, content)
	if s.PatchErr != nil {
		return "", s.PatchErr
	}
	if s.Transform == nil {
		return content, nil
	}
	return s.Transform(content), nil
}
