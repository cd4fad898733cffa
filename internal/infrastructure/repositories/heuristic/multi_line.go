package heuristic

import (
	"context"
	"strings"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
)

const (
	callStartToken   = "await fetch("
	markerKey        = "credentials:"
	callCloseToken   = "});"
	objectCloseToken = "},"

	// lookaheadLines bounds the search for an existing credentials option.
	lookaheadLines = 10
)

// MultiLineRepository injects a credentials line into awaited fetch calls whose
// options object spans several lines, right after the headers map closes.
//
// The pass only recognises a headers map that ends with a Content-Type entry
// followed by a "}," line. Any other layout is left alone.
type MultiLineRepository struct{}

var _ repositories.PatcherRepository = (*MultiLineRepository)(nil)

// NewMultiLineRepository creates the multi-line pass.
func NewMultiLineRepository() *MultiLineRepository {
	return &MultiLineRepository{}
}

// Name returns the pass identifier.
func (it *MultiLineRepository) Name() string {
	return entities.PassMultiLine
}

// Patch never fails; blocks without a recognisable insertion point are left as they are.
func (it *MultiLineRepository) Patch(_ context.Context, content string) (string, error) {
	return patchMultiLine(content), nil
}

func patchMultiLine(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		line := lines[i]
		out = append(out, line)
		i++

		if !isCallStart(line) {
			continue
		}

		// a call closed on its own line has no multi-line options object to patch
		if strings.Contains(line, ");") || hasMarkerAhead(lines, i) {
			continue
		}

		var block []string
		block, i = scanForInsertionPoint(lines, i)
		out = append(out, block...)
	}

	return strings.Join(out, "\n")
}

func isCallStart(line string) bool {
	return strings.Contains(line, callStartToken) && !strings.Contains(line, "credentials")
}

// hasMarkerAhead looks up to lookaheadLines lines past start for an explicit
// credentials option, stopping early at a line that ends the call.
func hasMarkerAhead(lines []string, start int) bool {
	end := min(start+lookaheadLines, len(lines))
	for j := start; j < end; j++ {
		if strings.Contains(lines[j], markerKey) {
			return true
		}
		if strings.Contains(lines[j], ");") && !strings.Contains(lines[j], "{") {
			break
		}
	}
	return false
}

// scanForInsertionPoint copies lines from start until the call closes,
// inserting the credentials line after each "}," that ends a headers map.
// It returns the copied block and the index of the first line after it.
func scanForInsertionPoint(lines []string, start int) ([]string, int) {
	block := make([]string, 0, lookaheadLines)

	i := start
	for i < len(lines) {
		current := lines[i]
		block = append(block, current)

		if isContentTypeEntry(current) && i+1 < len(lines) && strings.Contains(lines[i+1], objectCloseToken) {
			closing := lines[i+1]
			block = append(block, closing, leadingWhitespace(closing)+entities.CredentialsMarker+",")
			i += 2
			continue
		}

		if strings.Contains(current, callCloseToken) {
			i++
			break
		}
		i++
	}

	return block, i
}

func isContentTypeEntry(line string) bool {
	return strings.Contains(line, "'Content-Type':") || strings.Contains(line, `"Content-Type":`)
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
