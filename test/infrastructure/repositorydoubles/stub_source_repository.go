//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

// InMemorySourceRepository implements repositories.SourceRepository over a map.
type InMemorySourceRepository struct {
	Files map[string]string // path -> content

	ReadErr  error
	WriteErr error
	// spy: paths written, in order
	Written []string
}

var _ repositories.SourceRepository = (*InMemorySourceRepository)(nil)

// NewInMemorySourceRepository creates a repository seeded with files.
func NewInMemorySourceRepository(files map[string]string) *InMemorySourceRepository {
	if files == nil {
		files = make(map[string]string)
	}
	return &InMemorySourceRepository{Files: files}
}

func (s *InMemorySourceRepository) Exists(path string) bool {
	_, ok := s.Files[path]
	return ok
}

func (s *InMemorySourceRepository) Read(path string) (string, error) {
	if s.ReadErr != nil {
		return "", s.ReadErr
	}
	content, ok := s.Files[path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return content, nil
}

func (s *InMemorySourceRepository) Write(path, content string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Files[path] = content
	s.Written = append(s.Written, path)
	return nil
}
