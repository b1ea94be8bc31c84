package sqldocument

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testScanner is a minimal dialect: whitespace, '--' and nested '/*'
// comments, single quoted strings with doubling, double quoted identifiers,
// numbers, words and single character "other" tokens.
type testScanner struct {
	TokenScanner
}

func newTestScanner(input string) *testScanner {
	s := &testScanner{}
	s.Init("test.sql", input, s.nextToken, nil)
	return s
}

func (s *testScanner) nextToken() TokenType {
	s.IncIndexes()
	r, w := s.TokenRune(0)
	if w == 0 {
		return EOFToken
	}
	if r == utf8.RuneError && w == 1 {
		return s.ScanNonUTF8()
	}
	r2, _ := s.TokenRune(w)
	switch {
	case r == '\'':
		s.IncCurIndex(w)
		return s.ScanDelimited('\'', true, false, StringLiteralToken, UnterminatedStringErrorToken)
	case r == '"':
		s.IncCurIndex(w)
		return s.ScanDelimited('"', true, false, QuotedIdentifierToken, UnterminatedIdentifierErrorToken)
	case r == '-' && r2 == '-':
		s.IncCurIndex(2)
		return s.ScanSinglelineComment()
	case r == '/' && r2 == '*':
		s.IncCurIndex(2)
		return s.ScanMultilineComment(true)
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return s.ScanWhitespace()
	case r >= '0' && r <= '9':
		return s.ScanNumber()
	case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		s.IncCurIndex(w)
		s.ScanIdentifier(nil)
		return s.ClassifyWord(map[string]struct{}{"select": {}, "from": {}})
	}
	s.IncCurIndex(w)
	return OtherToken
}

func collect(s *testScanner) (types []TokenType, texts []string) {
	for tt := s.NextToken(); tt != EOFToken; tt = s.NextToken() {
		types = append(types, tt)
		texts = append(texts, s.Token())
	}
	return
}

func TestTokenScanner_Init(t *testing.T) {
	var s TokenScanner
	s.Init("q.sql", "SELECT 1", func() TokenType { return EOFToken }, nil)
	assert.Equal(t, "SELECT 1", s.Input())
	assert.Equal(t, FileRef("q.sql"), s.Start().File)
	assert.Equal(t, EOFToken, s.NextToken())
}

func TestTokenScanner_IncIndexes(t *testing.T) {
	ts := &TokenScanner{}
	ts.curIndex = 10
	ts.stopLine = 5
	ts.indexAtStopLine = 8
	ts.reservedWord = "select"

	ts.IncIndexes()

	assert.Equal(t, 10, ts.startIndex)
	assert.Equal(t, 5, ts.startLine)
	assert.Equal(t, 8, ts.indexAtStartLine)
	assert.Equal(t, "", ts.reservedWord)
}

func TestTokenScanner_NextTokenRecordsType(t *testing.T) {
	s := newTestScanner("select")
	assert.Equal(t, ReservedWordToken, s.NextToken())
	assert.Equal(t, ReservedWordToken, s.TokenType())
	assert.Equal(t, ReservedWordToken, s.CommonTokenType())
	assert.Equal(t, "select", s.ReservedWord())
	assert.Equal(t, EOFToken, s.NextToken())
}

func TestTokenScanner_CommonTokenType(t *testing.T) {
	const dialectToken = ANSITokenStart + 1
	ts := &TokenScanner{}
	ts.Init("", "x", func() TokenType { return dialectToken }, func(tt TokenType) TokenType {
		if tt == dialectToken {
			return OtherToken
		}
		return tt
	})
	ts.NextToken()
	assert.Equal(t, dialectToken, ts.TokenType())
	assert.Equal(t, OtherToken, ts.CommonTokenType())
}

func TestTokenScanner_TokenRune_Unicode(t *testing.T) {
	ts := &TokenScanner{}
	ts.input = "æøå"

	r, w := ts.TokenRune(0)
	assert.Equal(t, 'æ', r)
	assert.Equal(t, 2, w)

	r, w = ts.TokenRune(2)
	assert.Equal(t, 'ø', r)
	assert.Equal(t, 2, w)

	_, w = ts.TokenRune(6)
	assert.Equal(t, 0, w)
}

func TestTokenScanner_Start(t *testing.T) {
	ts := &TokenScanner{}
	ts.input = "line1\nline2"
	ts.file = "test.sql"
	ts.startLine = 1
	ts.startIndex = 8
	ts.indexAtStartLine = 6

	assert.Equal(t, Pos{File: "test.sql", Line: 2, Col: 3, Offset: 8}, ts.Start())
}

func TestTokenScanner_StartCountsCharacters(t *testing.T) {
	s := newTestScanner("'æøå' x")
	s.NextToken()
	s.NextToken()
	s.NextToken()
	require.Equal(t, "x", s.Token())
	assert.Equal(t, 7, s.Start().Col)
	assert.Equal(t, 9, s.Start().Offset)
}

func TestTokenScanner_BumpLine(t *testing.T) {
	ts := &TokenScanner{}
	ts.curIndex = 10
	ts.stopLine = 0

	ts.BumpLine(5)

	assert.Equal(t, 1, ts.stopLine)
	assert.Equal(t, 16, ts.indexAtStopLine)
}

func TestTokenScanner_ScanMultilineComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		nested   bool
		expected TokenType
		stop     int
		line     int
	}{
		{"simple", "/* c */ x", false, MultilineCommentToken, 7, 0},
		{"multi line", "/* a\nb */", false, MultilineCommentToken, 9, 1},
		{"unterminated", "/* never", false, UnterminatedCommentErrorToken, 8, 0},
		{"flat ignores inner opener", "/* /* */ x", false, MultilineCommentToken, 8, 0},
		{"nested", "/* /* */ */x", true, MultilineCommentToken, 11, 0},
		{"nested unterminated", "/* /* */", true, UnterminatedCommentErrorToken, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &TokenScanner{}
			ts.input = tt.input
			ts.curIndex = 2

			assert.Equal(t, tt.expected, ts.ScanMultilineComment(tt.nested))
			assert.Equal(t, tt.stop, ts.curIndex)
			assert.Equal(t, tt.line, ts.stopLine)
		})
	}
}

func TestTokenScanner_ScanSinglelineComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		stop  int
	}{
		{"to newline", "-- c\nx", 4},
		{"to eof", "-- c", 4},
		{"empty", "--\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &TokenScanner{}
			ts.input = tt.input
			ts.curIndex = 2

			assert.Equal(t, SinglelineCommentToken, ts.ScanSinglelineComment())
			assert.Equal(t, tt.stop, ts.curIndex)
		})
	}
}

func TestTokenScanner_ScanWhitespace(t *testing.T) {
	ts := &TokenScanner{}
	ts.input = " \n\t\n x"

	assert.Equal(t, WhitespaceToken, ts.ScanWhitespace())
	assert.Equal(t, 5, ts.curIndex)
	assert.Equal(t, 2, ts.stopLine)
	assert.Equal(t, 4, ts.indexAtStopLine)
}

func TestTokenScanner_ScanDelimited(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		doubling  bool
		backslash bool
		expected  TokenType
		stop      int
	}{
		{"plain", "'abc' x", true, false, StringLiteralToken, 5},
		{"doubled quote", "'it''s' x", true, false, StringLiteralToken, 7},
		{"backslash escape", `'it\'s' x`, false, true, StringLiteralToken, 7},
		{"backslash not honoured", `'a\' x`, true, false, StringLiteralToken, 4},
		{"unterminated", "'abc", true, false, UnterminatedStringErrorToken, 4},
		{"unterminated by doubling", "'abc''", true, false, UnterminatedStringErrorToken, 6},
		{"unicode", "'æøå'", true, false, StringLiteralToken, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &TokenScanner{}
			ts.input = tt.input
			ts.curIndex = 1

			assert.Equal(t, tt.expected,
				ts.ScanDelimited('\'', tt.doubling, tt.backslash, StringLiteralToken, UnterminatedStringErrorToken))
			assert.Equal(t, tt.stop, ts.curIndex)
		})
	}
}

func TestTokenScanner_ScanUntil(t *testing.T) {
	ts := &TokenScanner{}
	ts.input = "$$a\nb$$ x"
	ts.curIndex = 2

	assert.Equal(t, StringLiteralToken, ts.ScanUntil("$$", StringLiteralToken, UnterminatedStringErrorToken))
	assert.Equal(t, 7, ts.curIndex)
	assert.Equal(t, 1, ts.stopLine)

	ts = &TokenScanner{}
	ts.input = "$$a"
	ts.curIndex = 2
	assert.Equal(t, UnterminatedStringErrorToken, ts.ScanUntil("$$", StringLiteralToken, UnterminatedStringErrorToken))
	assert.Equal(t, 3, ts.curIndex)
}

func TestTokenScanner_ScanNumber(t *testing.T) {
	for _, input := range []string{"42", "3.14", ".5", "1e10", "2.5E-3"} {
		t.Run(input, func(t *testing.T) {
			ts := &TokenScanner{}
			ts.input = input + " "
			assert.Equal(t, NumberToken, ts.ScanNumber())
			assert.Equal(t, len(input), ts.curIndex)
		})
	}
}

func TestTokenScanner_SkipWhitespaceComments(t *testing.T) {
	s := newTestScanner("  -- c\n /* d */ select")
	s.NextToken()
	s.SkipWhitespaceComments()
	assert.Equal(t, ReservedWordToken, s.TokenType())
}

func TestTokenScanner_NextNonWhitespaceToken(t *testing.T) {
	s := newTestScanner("select   -- c\nfrom")
	s.NextToken()
	assert.Equal(t, SinglelineCommentToken, s.NextNonWhitespaceToken())
	assert.Equal(t, ReservedWordToken, s.NextNonWhitespaceCommentToken())
	assert.Equal(t, "from", s.ReservedWord())
}

func TestTokenScanner_NonUTF8(t *testing.T) {
	s := newTestScanner("a\xffb")
	types, texts := collect(s)
	assert.Equal(t, []TokenType{UnquotedIdentifierToken, NonUTF8ErrorToken, UnquotedIdentifierToken}, types)
	assert.Equal(t, []string{"a", "\xff", "b"}, texts)
}

func TestTokenScanner_LineTracking(t *testing.T) {
	s := newTestScanner("select\n  x\n\n'a\nb' y")
	var starts []Pos
	for tt := s.NextToken(); tt != EOFToken; tt = s.NextToken() {
		if tt != WhitespaceToken {
			starts = append(starts, s.Start())
		}
	}
	require.Len(t, starts, 4)
	assert.Equal(t, 1, starts[0].Line)
	assert.Equal(t, Pos{File: "test.sql", Line: 2, Col: 3, Offset: 9}, starts[1])
	assert.Equal(t, Pos{File: "test.sql", Line: 4, Col: 1, Offset: 12}, starts[2])
	assert.Equal(t, Pos{File: "test.sql", Line: 5, Col: 4, Offset: 18}, starts[3])
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "StringLiteral", StringLiteralToken.String())
	assert.Equal(t, "TokenType(3001)", (ANSITokenStart + 1).String())
	assert.Equal(t, "TokenType(-1)", TokenType(-1).String())
}
