// Package jsast holds the tree-sitter queries shared by the structural pass and
// the call-site scanner.
package jsast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

const credentialsKey = "credentials"

// fetchReceivers are the objects whose .fetch member is treated as the global fetch.
var fetchReceivers = map[string]bool{ //nolint:gochecknoglobals // lookup table
	"window":     true,
	"globalThis": true,
	"self":       true,
}

// IsFetchCall reports whether node is a call to fetch, window.fetch,
// globalThis.fetch or self.fetch.
func IsFetchCall(node *sitter.Node, source []byte) bool {
	if node.Type() != "call_expression" {
		return false
	}

	callee := node.ChildByFieldName("function")
	if callee == nil {
		return false
	}
	switch callee.Type() {
	case "identifier":
		return callee.Content(source) == "fetch"
	case "member_expression":
		object := callee.ChildByFieldName("object")
		property := callee.ChildByFieldName("property")
		return object != nil && property != nil &&
			fetchReceivers[object.Content(source)] &&
			property.Content(source) == "fetch"
	default:
		return false
	}
}

// Arguments returns the call's arguments, or false for tagged template calls.
func Arguments(call *sitter.Node) ([]*sitter.Node, bool) {
	arguments := call.ChildByFieldName("arguments")
	if arguments == nil || arguments.Type() != "arguments" {
		return nil, false
	}
	return NamedChildren(arguments), true
}

// HasCredentialsKey reports whether an object literal declares a credentials
// property, plain, quoted or shorthand.
func HasCredentialsKey(object *sitter.Node, source []byte) bool {
	for _, prop := range NamedChildren(object) {
		switch prop.Type() {
		case "shorthand_property_identifier":
			if prop.Content(source) == credentialsKey {
				return true
			}
		case "pair":
			if key := prop.ChildByFieldName("key"); key != nil && propertyName(key, source) == credentialsKey {
				return true
			}
		}
	}
	return false
}

// HasSpread reports whether an object literal spreads another object into itself.
func HasSpread(object *sitter.Node) bool {
	for _, prop := range NamedChildren(object) {
		if prop.Type() == "spread_element" {
			return true
		}
	}
	return false
}

// CallHasCredentials reports whether a fetch call passes an options object
// literal with a credentials property.
func CallHasCredentials(call *sitter.Node, source []byte) bool {
	args, ok := Arguments(call)
	if !ok || len(args) < 2 || args[1].Type() != "object" {
		return false
	}
	return HasCredentialsKey(args[1], source)
}

// NamedChildren returns the named children of node, skipping comments.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	children := make([]*sitter.Node, 0, node.NamedChildCount())
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func propertyName(key *sitter.Node, source []byte) string {
	return strings.Trim(key.Content(source), `'"`+"`")
}
