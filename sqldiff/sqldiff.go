// Package sqldiff compares two SQL texts line by line. It works on raw text,
// so it shows how a query was edited rather than whether two queries mean
// the same thing.
package sqldiff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change is a run of whole lines, each keeping its line break.
type Change struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Result of Compare. The counts skip empty lines.
type Result struct {
	Changes    []Change `json:"changes"`
	Additions  int      `json:"additions"`
	Deletions  int      `json:"deletions"`
	Unchanged  int      `json:"unchanged"`
	HasChanges bool     `json:"hasChanges"`
}

// Compare diffs original against modified. Joining the Unchanged and
// Removed changes in order gives back original; joining Unchanged and Added
// gives back modified. Within a replaced region the removed lines come
// first.
func Compare(original, modified string) Result {
	a, b := splitLines(original), splitLines(modified)
	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)

	var changes []Change
	emit := func(kind Kind, lines []string) {
		if len(lines) == 0 {
			return
		}
		text := strings.Join(lines, "")
		if n := len(changes); n > 0 && changes[n-1].Kind == kind {
			changes[n-1].Text += text
			return
		}
		changes = append(changes, Change{Kind: kind, Text: text})
	}
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			emit(Unchanged, a[op.I1:op.I2])
		case 'd':
			emit(Removed, a[op.I1:op.I2])
		case 'i':
			emit(Added, b[op.J1:op.J2])
		case 'r':
			emit(Removed, a[op.I1:op.I2])
			emit(Added, b[op.J1:op.J2])
		}
	}

	result := Result{Changes: changes}
	for _, c := range changes {
		n := countLines(c.Text)
		switch c.Kind {
		case Added:
			result.Additions += n
		case Removed:
			result.Deletions += n
		default:
			result.Unchanged += n
		}
	}
	result.HasChanges = result.Additions > 0 || result.Deletions > 0
	return result
}

// Patch renders a unified diff with the given number of context lines,
// the way diff -u does.
func Patch(original, modified, fromName, toName string, context int) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(original),
		B:        splitLines(modified),
		FromFile: fromName,
		ToFile:   toName,
		Context:  context,
	})
}

// splitLines splits s after every line break. Unlike difflib.SplitLines it
// adds no line break to the last line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			n++
		}
	}
	return n
}
