package sqldiff

import "strings"

// Row is one line of a rendered diff. OldLine and NewLine are 1-indexed
// line numbers in the original and modified text; zero means the line has
// no counterpart on that side.
type Row struct {
	Kind    Kind   `json:"kind"`
	OldLine int    `json:"oldLine,omitempty"`
	NewLine int    `json:"newLine,omitempty"`
	Text    string `json:"text"`
}

// Unified interleaves the lines of both sides in the order of changes.
func Unified(changes []Change) []Row {
	var rows []Row
	oldLine, newLine := 1, 1
	for _, c := range changes {
		for _, line := range rowLines(c.Text) {
			row := Row{Kind: c.Kind, Text: line}
			if c.Kind != Added {
				row.OldLine = oldLine
				oldLine++
			}
			if c.Kind != Removed {
				row.NewLine = newLine
				newLine++
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// SideBySide splits changes into the original side, holding removed and
// unchanged lines, and the modified side, holding added and unchanged
// lines.
func SideBySide(changes []Change) (left, right []Row) {
	for _, row := range Unified(changes) {
		if row.Kind != Added {
			left = append(left, row)
		}
		if row.Kind != Removed {
			right = append(right, row)
		}
	}
	return left, right
}

func rowLines(text string) []string {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
