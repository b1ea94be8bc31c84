package sqldocument

import (
	"fmt"
	"strings"
)

// SpanClass is the lexical class of a Span.
type SpanClass int

const (
	CodeSpan SpanClass = iota
	StringLiteralSpan
	QuotedIdentifierSpan
	LineCommentSpan
	BlockCommentSpan
)

func (c SpanClass) String() string {
	switch c {
	case CodeSpan:
		return "code"
	case StringLiteralSpan:
		return "string literal"
	case QuotedIdentifierSpan:
		return "quoted identifier"
	case LineCommentSpan:
		return "line comment"
	case BlockCommentSpan:
		return "block comment"
	}
	return fmt.Sprintf("SpanClass(%d)", int(c))
}

// Span is a maximal run of text of one lexical class. Code spans include
// whitespace between tokens.
type Span struct {
	Class        SpanClass
	Start, Stop  int // byte offsets, Stop exclusive
	StartPos     Pos
	Text         string
	Unterminated bool // the literal or comment runs to end of input
}

// Spans partition the input they were classified from: concatenating the
// Text of every span reproduces it exactly.
type Spans []Span

func (s Spans) String() string {
	var b strings.Builder
	for _, span := range s {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Classify drains the scanner and groups its tokens into spans. The scanner
// must be positioned before its first token.
func Classify(s Scanner) Spans {
	var out Spans
	for tt := s.NextToken(); tt != EOFToken; tt = s.NextToken() {
		class, unterminated := spanClassOf(s.CommonTokenType())
		if class == CodeSpan && len(out) > 0 && out[len(out)-1].Class == CodeSpan {
			last := &out[len(out)-1]
			last.Stop = s.StopIndex()
			last.Text = s.Input()[last.Start:last.Stop]
			continue
		}
		out = append(out, Span{
			Class:        class,
			Start:        s.StartIndex(),
			Stop:         s.StopIndex(),
			StartPos:     s.Start(),
			Text:         s.Token(),
			Unterminated: unterminated,
		})
	}
	return out
}

func spanClassOf(tt TokenType) (SpanClass, bool) {
	switch tt {
	case StringLiteralToken:
		return StringLiteralSpan, false
	case UnterminatedStringErrorToken:
		return StringLiteralSpan, true
	case QuotedIdentifierToken:
		return QuotedIdentifierSpan, false
	case UnterminatedIdentifierErrorToken:
		return QuotedIdentifierSpan, true
	case SinglelineCommentToken:
		return LineCommentSpan, false
	case MultilineCommentToken:
		return BlockCommentSpan, false
	case UnterminatedCommentErrorToken:
		return BlockCommentSpan, true
	}
	return CodeSpan, false
}

// LexicalFault reports a literal or comment that was never closed.
type LexicalFault struct {
	Class SpanClass
	Pos   Pos    // position of the opening delimiter
	Text  string // the unterminated span, from its opener to end of input
}

func (f *LexicalFault) Error() string {
	return fmt.Sprintf("unterminated %s at %s", f.Class, f.Pos)
}

// Fault returns the first unterminated span, or nil if every literal and
// comment is closed.
func (s Spans) Fault() *LexicalFault {
	for _, span := range s {
		if span.Unterminated {
			return &LexicalFault{Class: span.Class, Pos: span.StartPos, Text: span.Text}
		}
	}
	return nil
}
