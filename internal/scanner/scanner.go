package scanner

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/jsast"
)

const maxSnippetLength = 80

var (
	fetchPattern          = regexp.MustCompile(`\bfetch\s*\(`)                //nolint:gochecknoglobals // compiled once
	credentialsKeyPattern = regexp.MustCompile(`\bcredentials['"]?\s*:`) //nolint:gochecknoglobals // compiled once
)

// ScanFile lists the fetch call sites in a script, with whether each already
// passes a credentials option.
func ScanFile(ctx context.Context, content, filePath string) ([]entities.CallSite, error) {
	source := []byte(content)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		// Try regex-based scanning as fallback
		return scanWithRegex(content, filePath), nil
	}

	var sites []entities.CallSite
	walk(root, source, filePath, &sites)
	return sites, nil
}

func walk(node *sitter.Node, source []byte, filePath string, sites *[]entities.CallSite) {
	if jsast.IsFetchCall(node, source) {
		start := node.StartPoint()
		*sites = append(*sites, entities.CallSite{
			FilePath:       filePath,
			Line:           int(start.Row) + 1,
			Column:         int(start.Column) + 1,
			Snippet:        snippet(node.Content(source)),
			HasCredentials: jsast.CallHasCredentials(node, source),
		})
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		walk(node.NamedChild(i), source, filePath, sites)
	}
}

// scanWithRegex is a fallback scanner for sources tree-sitter cannot parse
// cleanly. A call is considered credentialed when a credentials key appears
// before the first ");" after it.
func scanWithRegex(content, filePath string) []entities.CallSite {
	var sites []entities.CallSite

	for _, match := range fetchPattern.FindAllStringIndex(content, -1) {
		start := match[0]

		end := strings.Index(content[start:], ");")
		if end == -1 {
			end = len(content) - start
		}
		call := content[start : start+end]

		lineStart := strings.LastIndex(content[:start], "\n") + 1
		sites = append(sites, entities.CallSite{
			FilePath:       filePath,
			Line:           strings.Count(content[:start], "\n") + 1,
			Column:         start - lineStart + 1,
			Snippet:        snippet(call),
			HasCredentials: credentialsKeyPattern.MatchString(call),
		})
	}

	return sites
}

// snippet returns the first line of text, shortened for display.
func snippet(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx != -1 {
		text = text[:idx]
	}
	text = strings.TrimSpace(text)
	if len(text) > maxSnippetLength {
		return text[:maxSnippetLength-3] + "..."
	}
	return text
}
