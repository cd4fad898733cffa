package structural

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
	"github.com/rios0rios0/credpatch/internal/jsast"
)

// Repository injects credentials by walking the JavaScript syntax tree instead
// of matching text. Call sites are found by callee name and argument shape, and
// an existing credentials property is detected by key, so the pass is idempotent.
type Repository struct {
	language *sitter.Language
}

var _ repositories.PatcherRepository = (*Repository)(nil)

// NewRepository creates the structural pass using the tree-sitter JavaScript grammar.
func NewRepository() *Repository {
	return &Repository{language: javascript.GetLanguage()}
}

// Name returns the pass identifier.
func (it *Repository) Name() string {
	return entities.PassStructural
}

// Patch parses content and rewrites every eligible fetch call. Source that does
// not parse cleanly is rejected rather than edited.
func (it *Repository) Patch(ctx context.Context, content string) (string, error) {
	source := []byte(content)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(it.language)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return "", fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if bad := firstErrorNode(root); bad != nil {
			return "", fmt.Errorf(
				"source has syntax errors at line %d, column %d",
				bad.StartPoint().Row+1, bad.StartPoint().Column+1,
			)
		}
		return "", errors.New("source has syntax errors")
	}

	var edits []edit
	collectEdits(root, source, &edits)

	return applyEdits(content, edits), nil
}

// edit replaces source[start:end] with text; start == end is a pure insertion.
type edit struct {
	start uint32
	end   uint32
	text  string
}

func collectEdits(node *sitter.Node, source []byte, edits *[]edit) {
	if jsast.IsFetchCall(node, source) {
		*edits = append(*edits, callEdits(node, source)...)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectEdits(node.NamedChild(i), source, edits)
	}
}

// callEdits returns the edits needed for one fetch call, or nil when the call
// already carries credentials or has a shape that cannot be patched safely.
func callEdits(call *sitter.Node, source []byte) []edit {
	args, ok := jsast.Arguments(call)
	if !ok {
		return nil // tagged template call
	}
	switch {
	case len(args) == 0:
		return nil
	case len(args) == 1:
		if args[0].Type() == "spread_element" {
			return nil
		}
		return []edit{{
			start: args[0].EndByte(),
			end:   args[0].EndByte(),
			text:  ", { " + entities.CredentialsMarker + " }",
		}}
	default:
		options := args[1]
		if options.Type() != "object" || !acceptsCredentials(options, source) {
			return nil
		}
		return objectEdits(options, source)
	}
}

// acceptsCredentials reports whether an options object lacks a credentials
// key and has no spread that might already provide one.
func acceptsCredentials(object *sitter.Node, source []byte) bool {
	return !jsast.HasSpread(object) && !jsast.HasCredentialsKey(object, source)
}

// objectEdits places the credentials property after the last property of the
// options object, on its own line when the object spans several lines.
func objectEdits(object *sitter.Node, source []byte) []edit {
	props := jsast.NamedChildren(object)
	if len(props) == 0 {
		return []edit{{
			start: object.StartByte(),
			end:   object.EndByte(),
			text:  "{ " + entities.CredentialsMarker + " }",
		}}
	}

	last := props[len(props)-1]
	pos := last.EndByte()
	closing := object.EndByte() - 1 // the '}'

	comma, hasComma := trailingComma(source, pos, closing)
	if hasComma {
		pos = comma + 1
	}

	lineEnd, newline, multiLine := endOfLine(source, pos, closing)
	if !multiLine {
		if hasComma {
			return []edit{{start: pos, end: pos, text: " " + entities.CredentialsMarker + ","}}
		}
		return []edit{{start: pos, end: pos, text: ", " + entities.CredentialsMarker}}
	}

	line := newline + indentOf(source, last.StartByte()) + entities.CredentialsMarker
	if hasComma {
		return []edit{{start: lineEnd, end: lineEnd, text: line + ","}}
	}
	// the new line goes first so that, at equal offsets, the comma lands before it
	return []edit{
		{start: lineEnd, end: lineEnd, text: line},
		{start: last.EndByte(), end: last.EndByte(), text: ","},
	}
}

// trailingComma finds a ',' following pos, skipping only horizontal whitespace.
func trailingComma(source []byte, pos, limit uint32) (uint32, bool) {
	for i := pos; i < limit; i++ {
		switch source[i] {
		case ' ', '\t':
			continue
		case ',':
			return i, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// endOfLine returns the offset where the line containing pos ends, the newline
// sequence used there, and false when the object closes on that same line.
func endOfLine(source []byte, pos, closing uint32) (uint32, string, bool) {
	for i := pos; i < closing; i++ {
		if source[i] != '\n' {
			continue
		}
		if i > pos && source[i-1] == '\r' {
			return i - 1, "\r\n", true
		}
		return i, "\n", true
	}
	return 0, "", false
}

// indentOf returns the leading whitespace of the line containing offset.
func indentOf(source []byte, offset uint32) string {
	start := offset
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := start
	for end < offset && (source[end] == ' ' || source[end] == '\t') {
		end++
	}
	return string(source[start:end])
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// applyEdits applies non-overlapping edits back to front so offsets stay valid.
func applyEdits(content string, edits []edit) string {
	if len(edits) == 0 {
		return content
	}

	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].start > edits[j].start
	})

	result := content
	for _, e := range edits {
		result = result[:e.start] + e.text + result[e.end:]
	}
	return result
}
