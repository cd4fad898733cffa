package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

const (
	manifestFileMode = 0o644
	manifestDirMode  = 0o755
)

// YAMLManifestRepository stores the patch manifest as a YAML document.
type YAMLManifestRepository struct{}

var _ repositories.ManifestRepository = (*YAMLManifestRepository)(nil)

// NewYAMLManifestRepository creates a YAML-backed manifest repository.
func NewYAMLManifestRepository() *YAMLManifestRepository {
	return &YAMLManifestRepository{}
}

// Load reads the manifest at path. A missing file yields an empty manifest.
func (it *YAMLManifestRepository) Load(path string) (*entities.Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.NewManifest(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	manifest := entities.NewManifest()
	if unmarshalErr := yaml.Unmarshal(data, manifest); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", path, unmarshalErr)
	}
	if manifest.Version > entities.ManifestVersion {
		return nil, fmt.Errorf(
			"manifest %q has version %d, newer than supported version %d",
			path, manifest.Version, entities.ManifestVersion,
		)
	}
	if manifest.Entries == nil {
		manifest.Entries = make(map[string]entities.ManifestEntry)
	}

	return manifest, nil
}

// Save writes the manifest to path, creating parent directories as needed.
func (it *YAMLManifestRepository) Save(path string, manifest *entities.Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), manifestDirMode); mkdirErr != nil {
		return fmt.Errorf("failed to create manifest directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(path, data, manifestFileMode); writeErr != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, writeErr)
	}
	return nil
}
