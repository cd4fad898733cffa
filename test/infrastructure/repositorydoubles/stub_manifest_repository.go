//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository in memory.
type StubManifestRepository struct {
	Manifest *entities.Manifest
	LoadErr  error
	SaveErr  error
	// spy: paths saved to, in order
	SavedPaths []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Load(_ string) (*entities.Manifest, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Manifest == nil {
		s.Manifest = entities.NewManifest()
	}
	return s.Manifest, nil
}

func (s *StubManifestRepository) Save(path string, manifest *entities.Manifest) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Manifest = manifest
	s.SavedPaths = append(s.SavedPaths, path)
	return nil
}
