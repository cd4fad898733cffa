package repositories

import "github.com/rios0rios0/credpatch/internal/domain/entities"

// ManifestRepository persists the record of patched files between runs.
type ManifestRepository interface {
	// Load returns the manifest at path, or an empty one if it does not exist yet.
	Load(path string) (*entities.Manifest, error)

	// Save writes the manifest to path.
	Save(path string, manifest *entities.Manifest) error
}
