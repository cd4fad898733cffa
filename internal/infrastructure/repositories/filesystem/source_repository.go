package filesystem

import (
	"fmt"
	"os"

	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

const defaultFileMode = 0o644

// SourceRepository reads and writes script files on the local disk.
type SourceRepository struct{}

var _ repositories.SourceRepository = (*SourceRepository)(nil)

// NewSourceRepository creates a disk-backed source repository.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{}
}

// Exists reports whether path is an existing regular file.
func (it *SourceRepository) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Read returns the contents of path.
func (it *SourceRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}

// Write overwrites path in full. Existing permissions are preserved.
func (it *SourceRepository) Write(path, content string) error {
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
