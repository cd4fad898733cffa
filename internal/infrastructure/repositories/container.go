package repositories

import (
	domainRepos "github.com/rios0rios0/credpatch/internal/domain/repositories"
	"github.com/rios0rios0/credpatch/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/credpatch/internal/infrastructure/repositories/heuristic"
	"github.com/rios0rios0/credpatch/internal/infrastructure/repositories/manifest"
	"github.com/rios0rios0/credpatch/internal/infrastructure/repositories/structural"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register patcher registry with every pass
	if err := container.Provide(func() *PatcherRegistry {
		reg := NewPatcherRegistry()
		reg.Register(heuristic.NewSingleLineRepository())
		reg.Register(heuristic.NewMultiLineRepository())
		reg.Register(heuristic.NewMethodOptionsRepository())
		reg.Register(structural.NewRepository())
		return reg
	}); err != nil {
		return err
	}

	// Bind storage interfaces to their implementations
	if err := container.Provide(func() domainRepos.SourceRepository {
		return filesystem.NewSourceRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.ManifestRepository {
		return manifest.NewYAMLManifestRepository()
	}); err != nil {
		return err
	}

	return nil
}
