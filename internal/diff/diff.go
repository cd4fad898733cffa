// Package diff renders line-level unified diffs of patched files using the
// sergi/go-diff library.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContext is the number of unchanged lines shown around each change.
const DefaultContext = 3

type opKind int

const (
	opEqual opKind = iota
	opDelete
	opInsert
)

type lineOp struct {
	kind    opKind
	text    string
	oldLine int // 1-based line in the old text, 0 for inserts
	newLine int // 1-based line in the new text, 0 for deletes
}

// Stats counts the lines added and removed between two texts.
type Stats struct {
	Added   int
	Removed int
}

// Render returns a unified diff between oldContent and newContent labelled with
// path, or "" when the texts are identical.
func Render(path, oldContent, newContent string, context int) string {
	if oldContent == newContent {
		return ""
	}

	ops := lineOps(oldContent, newContent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range hunks(ops, context) {
		writeHunk(&sb, ops[h[0]:h[1]])
	}
	return sb.String()
}

// Summarize counts added and removed lines between two texts.
func Summarize(oldContent, newContent string) Stats {
	var stats Stats
	for _, op := range lineOps(oldContent, newContent) {
		switch op.kind {
		case opInsert:
			stats.Added++
		case opDelete:
			stats.Removed++
		case opEqual:
		}
	}
	return stats
}

func lineOps(oldContent, newContent string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var ops []lineOp
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, lineOp{kind: opEqual, text: text, oldLine: oldLine, newLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, lineOp{kind: opDelete, text: text, oldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, lineOp{kind: opInsert, text: text, newLine: newLine})
				newLine++
			}
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\n")
	}
	return lines
}

// hunks groups changed ops with up to context unchanged lines on either side,
// merging groups whose context would overlap. Each hunk is a [start, end) range.
func hunks(ops []lineOp, context int) [][2]int {
	var result [][2]int
	for i := 0; i < len(ops); i++ {
		if ops[i].kind == opEqual {
			continue
		}

		start := max(0, i-context)
		end := i + 1
		for j := i + 1; j < len(ops); j++ {
			if ops[j].kind != opEqual {
				end = j + 1
				continue
			}
			if j-end >= 2*context {
				break
			}
		}
		end = min(len(ops), end+context)

		if n := len(result); n > 0 && start <= result[n-1][1] {
			result[n-1][1] = end
		} else {
			result = append(result, [2]int{start, end})
		}
		i = end - 1
	}
	return result
}

func writeHunk(sb *strings.Builder, ops []lineOp) {
	oldStart, newStart := 0, 0
	oldCount, newCount := 0, 0
	for _, op := range ops {
		if op.kind != opInsert {
			if oldStart == 0 {
				oldStart = op.oldLine
			}
			oldCount++
		}
		if op.kind != opDelete {
			if newStart == 0 {
				newStart = op.newLine
			}
			newCount++
		}
	}

	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, op := range ops {
		switch op.kind {
		case opEqual:
			sb.WriteString(" " + op.text + "\n")
		case opDelete:
			sb.WriteString("-" + op.text + "\n")
		case opInsert:
			sb.WriteString("+" + op.text + "\n")
		}
	}
}
