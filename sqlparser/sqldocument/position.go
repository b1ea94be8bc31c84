package sqldocument

import (
	"strings"
	"unicode/utf8"
)

// PosAt converts a byte offset in text to a Pos. The line is one more than
// the number of newlines before offset; the column is one more than the
// number of characters since the last newline. Offsets outside the text
// are clamped.
func PosAt(text string, offset int) Pos {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Pos{
		Line:   strings.Count(before, "\n") + 1,
		Col:    utf8.RuneCountInString(before[lineStart:]) + 1,
		Offset: offset,
	}
}

// OffsetOf is the inverse of PosAt: it returns the byte offset of the 1-indexed
// line and column. ok is false if the line does not exist; columns past the
// end of the line are clamped to the line end.
func OffsetOf(text string, line, col int) (offset int, ok bool) {
	if line < 1 || col < 1 {
		return 0, false
	}
	for l := 1; l < line; l++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl == -1 {
			return 0, false
		}
		offset += nl + 1
	}
	for c := 1; c < col && offset < len(text) && text[offset] != '\n'; c++ {
		_, w := utf8.DecodeRuneInString(text[offset:])
		offset += w
	}
	return offset, true
}

// RuneOffset converts a 0-indexed character offset into a byte offset.
// Character offsets past the end map to len(text).
func RuneOffset(text string, chars int) int {
	if chars <= 0 {
		return 0
	}
	for i := range text {
		if chars == 0 {
			return i
		}
		chars--
	}
	return len(text)
}
