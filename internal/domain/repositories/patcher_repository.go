package repositories

import "context"

// PatcherRepository is one named transformation of source text. Passes are
// chained: each receives the output of the previous one.
type PatcherRepository interface {
	// Name returns the pass identifier (e.g. "single-line", "structural").
	Name() string

	// Patch returns content with credentials injected into eligible fetch call
	// sites. Content without eligible call sites is returned unchanged.
	Patch(ctx context.Context, content string) (string, error)
}
