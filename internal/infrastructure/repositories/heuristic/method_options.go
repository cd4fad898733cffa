package heuristic

import (
	"context"
	"regexp"
	"strings"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

// methodOptionsPattern matches fetch(<url>, { ... method: '...' ... }) where the
// options object has no nested braces. Group 1 is the object body.
var methodOptionsPattern = regexp.MustCompile(
	`fetch\([^,]+,\s*\{([^}]*method:\s*['"][^'"]+['"][^}]*)\}\)`,
)

// MethodOptionsRepository adds credentials to flat options objects that set an
// explicit HTTP method, e.g. fetch(url, { method: 'DELETE' }).
type MethodOptionsRepository struct{}

var _ repositories.PatcherRepository = (*MethodOptionsRepository)(nil)

// NewMethodOptionsRepository creates the method-options pass.
func NewMethodOptionsRepository() *MethodOptionsRepository {
	return &MethodOptionsRepository{}
}

// Name returns the pass identifier.
func (it *MethodOptionsRepository) Name() string {
	return entities.PassMethodOptions
}

// Patch never fails.
func (it *MethodOptionsRepository) Patch(_ context.Context, content string) (string, error) {
	return patchMethodOptions(content), nil
}

func patchMethodOptions(content string) string {
	matches := methodOptionsPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		bodyStart, bodyEnd := m[2], m[3]
		body := content[bodyStart:bodyEnd]
		if strings.Contains(body, markerKey) {
			continue
		}
		sb.WriteString(content[last:bodyStart])
		sb.WriteString(appendCredentials(body))
		last = bodyEnd
	}
	sb.WriteString(content[last:])

	return sb.String()
}

// appendCredentials returns the object body with a credentials property added
// after the last existing property, keeping the body's surrounding whitespace.
func appendCredentials(body string) string {
	props := strings.TrimRight(body, " \t\r\n")
	tail := body[len(props):]
	props = strings.TrimSuffix(props, ",")

	if !strings.Contains(props, "\n") {
		return props + ", " + entities.CredentialsMarker + tail
	}

	// multi-line: new property on its own line, indented like the last property
	lastLine := props[strings.LastIndex(props, "\n")+1:]
	return props + ",\n" + leadingWhitespace(lastLine) + entities.CredentialsMarker + tail
}
