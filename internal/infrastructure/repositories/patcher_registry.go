package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/credpatch/internal/domain/repositories"
)

// PatcherRegistry manages all registered patch passes.
type PatcherRegistry struct {
	patchers map[string]domainRepos.PatcherRepository
}

// NewPatcherRegistry creates an empty patcher registry.
func NewPatcherRegistry() *PatcherRegistry {
	return &PatcherRegistry{
		patchers: make(map[string]domainRepos.PatcherRepository),
	}
}

// Register adds a pass under its name.
func (r *PatcherRegistry) Register(p domainRepos.PatcherRepository) {
	r.patchers[p.Name()] = p
}

// Get returns the pass with the given name.
func (r *PatcherRegistry) Get(name string) (domainRepos.PatcherRepository, error) {
	p, ok := r.patchers[name]
	if !ok {
		return nil, fmt.Errorf("unknown pass %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return p, nil
}

// Pipeline resolves the named passes, in order.
func (r *PatcherRegistry) Pipeline(names []string) ([]domainRepos.PatcherRepository, error) {
	pipeline := make([]domainRepos.PatcherRepository, 0, len(names))
	for _, name := range names {
		p, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, p)
	}
	return pipeline, nil
}

// Names returns the registered pass names, sorted.
func (r *PatcherRegistry) Names() []string {
	names := make([]string, 0, len(r.patchers))
	for name := range r.patchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
