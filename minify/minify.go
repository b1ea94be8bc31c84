// Package minify shrinks SQL text without changing what it means: runs of
// whitespace become one space, spaces next to punctuation are dropped, and
// comments are optionally removed. String literals, quoted identifiers and
// kept comments are copied byte for byte.
package minify

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/sqlparser"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

const emptyMessage = "Please enter some SQL to minify"

// Options of Minify. The zero value keeps comments and scans with the
// lexical rules of dialect.Standard.
type Options struct {
	RemoveComments bool            `yaml:"remove_comments"`
	Dialect        dialect.Dialect `yaml:"dialect"`
}

// DefaultOptions removes comments.
var DefaultOptions = Options{RemoveComments: true}

// Result of Minify. Sizes count characters, not bytes.
type Result struct {
	Success      bool   `json:"success"`
	MinifiedSQL  string `json:"minifiedSQL,omitempty"`
	OriginalSize int    `json:"originalSize"`
	MinifiedSize int    `json:"minifiedSize"`
	Savings      int    `json:"savings"` // percent
	Error        string `json:"error,omitempty"`
}

// Minify minifies sql. It fails only for empty or all-blank input.
func Minify(sql string, opts Options) Result {
	if strings.TrimSpace(sql) == "" {
		return Result{Error: emptyMessage}
	}
	minified := minifySpans(sqlparser.Classify(opts.Dialect, sql), opts.RemoveComments)
	originalSize := utf8.RuneCountInString(sql)
	minifiedSize := utf8.RuneCountInString(minified)
	return Result{
		Success:      true,
		MinifiedSQL:  minified,
		OriginalSize: originalSize,
		MinifiedSize: minifiedSize,
		Savings:      Savings(originalSize, minifiedSize),
	}
}

// Savings is the size reduction in whole percent, 0 for an empty original.
func Savings(originalSize, minifiedSize int) int {
	if originalSize == 0 {
		return 0
	}
	return int(math.Round((1 - float64(minifiedSize)/float64(originalSize)) * 100))
}

func minifySpans(spans sqldocument.Spans, removeComments bool) string {
	var w writer
	for _, span := range spans {
		switch {
		case span.Unterminated:
			w.verbatim(span.Text)
		case span.Class == sqldocument.CodeSpan:
			w.code(span.Text)
		case span.Class == sqldocument.LineCommentSpan:
			if removeComments {
				continue
			}
			w.verbatim(span.Text)
			// the comment ends at the line break, which has to survive
			w.newline = true
		case span.Class == sqldocument.BlockCommentSpan:
			if removeComments {
				w.space = true
				continue
			}
			w.verbatim(span.Text)
		default:
			w.verbatim(span.Text)
		}
	}
	return w.b.String()
}

// noSpaceBefore and noSpaceAfter hold the characters that absorb an
// adjacent space.
const (
	noSpaceBefore = ",;)]=<>!"
	noSpaceAfter  = "(,=<>!"
)

// writer collapses whitespace lazily: a run of blanks is remembered and
// only written once the next visible character shows whether it is needed.
type writer struct {
	b       strings.Builder
	last    rune
	space   bool
	newline bool
}

// code copies text rune by rune, writing the original bytes so invalid
// UTF-8 passes through unchanged.
func (w *writer) code(text string) {
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			w.space = true
		} else {
			w.flush(r)
			w.put(text[i:i+n], r)
		}
		i += n
	}
}

func (w *writer) verbatim(text string) {
	if text == "" {
		return
	}
	first, _ := utf8.DecodeRuneInString(text)
	last, _ := utf8.DecodeLastRuneInString(text)
	w.flush(first)
	w.put(text, last)
}

func (w *writer) put(text string, last rune) {
	w.b.WriteString(text)
	w.last = last
}

// flush writes the pending blank that precedes next, if any.
func (w *writer) flush(next rune) {
	space, newline := w.space, w.newline
	w.space, w.newline = false, false
	switch {
	case w.b.Len() == 0:
	case newline:
		w.b.WriteByte('\n')
	case !space:
	case strings.ContainsRune(noSpaceBefore, next), strings.ContainsRune(noSpaceAfter, w.last):
	default:
		w.b.WriteByte(' ')
	}
}
