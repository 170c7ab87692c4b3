// Package diff renders line-oriented unified diffs for generated files.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// DefaultContext is the number of unchanged lines kept around each change.
	DefaultContext = 3

	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type opKind int

const (
	opEqual opKind = iota
	opDelete
	opInsert
)

type lineOp struct {
	kind opKind
	text string
}

// Unified returns a unified diff between before and after using
// DefaultContext lines of context. Identical inputs produce an empty string.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	return UnifiedContext(before, after, beforeLabel, afterLabel, DefaultContext)
}

// UnifiedContext is Unified with an explicit context width. Output longer
// than 10,000 lines is truncated with a marker line.
func UnifiedContext(before, after []byte, beforeLabel, afterLabel string, context int) string {
	if bytes.Equal(before, after) {
		return ""
	}
	if context < 0 {
		context = 0
	}

	ops := lineOps(string(before), string(after))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)

	for _, h := range hunks(ops, context) {
		writeHunk(&buf, ops, h)
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// lineOps diffs at line granularity by mapping each distinct line to a rune.
func lineOps(before, after string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ops []lineOp
	for _, d := range diffs {
		kind := opEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = opDelete
		case diffmatchpatch.DiffInsert:
			kind = opInsert
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{kind: kind, text: line})
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type hunk struct {
	start, end int // half-open range into ops
}

// hunks groups changed ops with their surrounding context, merging groups
// whose context windows touch.
func hunks(ops []lineOp, context int) []hunk {
	var out []hunk
	for i, op := range ops {
		if op.kind == opEqual {
			continue
		}
		start := max(i-context, 0)
		end := min(i+context+1, len(ops))
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = max(out[n-1].end, end)
			continue
		}
		out = append(out, hunk{start: start, end: end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, ops []lineOp, h hunk) {
	oldStart, newStart := 1, 1
	for _, op := range ops[:h.start] {
		if op.kind != opInsert {
			oldStart++
		}
		if op.kind != opDelete {
			newStart++
		}
	}

	oldCount, newCount := 0, 0
	for _, op := range ops[h.start:h.end] {
		if op.kind != opInsert {
			oldCount++
		}
		if op.kind != opDelete {
			newCount++
		}
	}
	if oldCount == 0 {
		oldStart--
	}
	if newCount == 0 {
		newStart--
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, op := range ops[h.start:h.end] {
		switch op.kind {
		case opEqual:
			buf.WriteByte(' ')
		case opDelete:
			buf.WriteByte('-')
		case opInsert:
			buf.WriteByte('+')
		}
		buf.WriteString(op.text)
		buf.WriteByte('\n')
	}
}
