package heuristic

import (
	"context"
	"regexp"
	"strings"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

// singleLinePattern matches fetch(<arg>); where the argument has no comma or
// closing parenthesis, i.e. a call without an options object.
var singleLinePattern = regexp.MustCompile(`(fetch\([^,)]+)\);`)

const singleLineReplacement = ", { " + entities.CredentialsMarker + " });"

// SingleLineRepository rewrites bare fetch(url); calls into
// fetch(url, { credentials: 'include' });.
type SingleLineRepository struct{}

var _ repositories.PatcherRepository = (*SingleLineRepository)(nil)

// NewSingleLineRepository creates the single-line pass.
func NewSingleLineRepository() *SingleLineRepository {
	return &SingleLineRepository{}
}

// Name returns the pass identifier.
func (it *SingleLineRepository) Name() string {
	return entities.PassSingleLine
}

// Patch never fails; call sites that do not match are left as they are.
func (it *SingleLineRepository) Patch(_ context.Context, content string) (string, error) {
	return patchSingleLine(content), nil
}

func patchSingleLine(content string) string {
	return singleLinePattern.ReplaceAllStringFunc(content, func(match string) string {
		if strings.Contains(match, "credentials") {
			return match
		}
		return strings.TrimSuffix(match, ");") + singleLineReplacement
	})
}
