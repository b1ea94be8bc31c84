package sqldocument

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"github.com/vippsas/sqltext/sqlparser/internal/utils"
)

// TokenType represents the type of a lexical token.
// Common tokens are defined in the range 1-999.
// Dialect-specific tokens use ranges starting at 1000, 2000, etc.
type TokenType int

// Token range constants for dialect-specific extensions.
const (
	// CommonTokenStart is the start of common token range (1-999)
	CommonTokenStart TokenType = 1
	// TSQLTokenStart is the start of T-SQL specific tokens (1000-1999)
	TSQLTokenStart TokenType = 1000
	// PGSQLTokenStart is the start of PostgreSQL specific tokens (2000-2999)
	PGSQLTokenStart TokenType = 2000
	// ANSITokenStart is the start of tokens of the rule driven scanner (3000-3999)
	ANSITokenStart TokenType = 3000
)

// Common tokens shared across all SQL dialects.
// These represent fundamental SQL constructs.
const (
	// Structural tokens
	EOFToken TokenType = iota + 1
	WhitespaceToken
	LeftParenToken
	RightParenToken
	SemicolonToken
	EqualToken
	CommaToken
	DotToken

	// Literals
	StringLiteralToken // Generic string literal (dialect determines quote style)
	NumberToken

	// Comments
	MultilineCommentToken
	SinglelineCommentToken

	// Identifiers
	ReservedWordToken
	QuotedIdentifierToken
	UnquotedIdentifierToken
	VariableIdentifierToken

	// Special
	OtherToken

	// Errors
	UnterminatedStringErrorToken
	UnterminatedIdentifierErrorToken
	UnterminatedCommentErrorToken
	NonUTF8ErrorToken
)

var tokenNames = map[TokenType]string{
	EOFToken:                         "EOF",
	WhitespaceToken:                  "Whitespace",
	LeftParenToken:                   "LeftParen",
	RightParenToken:                  "RightParen",
	SemicolonToken:                   "Semicolon",
	EqualToken:                       "Equal",
	CommaToken:                       "Comma",
	DotToken:                         "Dot",
	StringLiteralToken:               "StringLiteral",
	NumberToken:                      "Number",
	MultilineCommentToken:            "MultilineComment",
	SinglelineCommentToken:           "SinglelineComment",
	ReservedWordToken:                "ReservedWord",
	QuotedIdentifierToken:            "QuotedIdentifier",
	UnquotedIdentifierToken:          "UnquotedIdentifier",
	VariableIdentifierToken:          "VariableIdentifier",
	OtherToken:                       "Other",
	UnterminatedStringErrorToken:     "UnterminatedStringError",
	UnterminatedIdentifierErrorToken: "UnterminatedIdentifierError",
	UnterminatedCommentErrorToken:    "UnterminatedCommentError",
	NonUTF8ErrorToken:                "NonUTF8Error",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// TokenScanner is the cursor shared by the dialect scanners. A dialect
// embeds it and supplies its own tokenization function through Init; the
// cursor takes care of token boundaries, line bookkeeping and the scanning
// routines that are identical across dialects.
type TokenScanner struct {
	ScannerInput
	next       func() TokenType // Dialect function that scans the next raw token
	toCommon   func(TokenType) TokenType
	startIndex int       // Byte index where current token starts
	curIndex   int       // Current byte position in Input
	tokenType  TokenType // Type of the current token

	startLine        int // Line number (0-indexed) where current token starts
	stopLine         int // Line number (0-indexed) where current token ends
	indexAtStartLine int // Byte index at the start of startLine (after newline)
	indexAtStopLine  int // Byte index at the start of stopLine (after newline)

	reservedWord string // Lowercase version of token if it's a reserved word, empty otherwise
}

// Init wires the dialect specific tokenizer into the cursor. toCommon may
// be nil when the dialect only produces common tokens.
func (s *TokenScanner) Init(file FileRef, input string, next func() TokenType, toCommon func(TokenType) TokenType) {
	*s = TokenScanner{next: next, toCommon: toCommon}
	s.SetFile(file)
	s.SetInput([]byte(input))
}

// Rebind replaces the tokenizer function. Used when cloning a dialect scanner.
func (s *TokenScanner) Rebind(next func() TokenType) {
	s.next = next
}

// NextToken scans the next token and advances the scanner's position.
func (s *TokenScanner) NextToken() TokenType {
	s.tokenType = s.next()
	utils.DPrint("token %s %q\n", s.tokenType, s.Token())
	return s.tokenType
}

func (s *TokenScanner) IncIndexes() {
	s.startIndex = s.curIndex
	s.startLine = s.stopLine
	s.indexAtStartLine = s.indexAtStopLine
	s.SetReservedWord("")
}

// TokenType returns the type of the current token.
func (s *TokenScanner) TokenType() TokenType {
	return s.tokenType
}

// CommonTokenType returns the current token type mapped onto the common
// token range.
func (s *TokenScanner) CommonTokenType() TokenType {
	if s.toCommon == nil {
		return s.tokenType
	}
	return s.toCommon(s.tokenType)
}

func (s *TokenScanner) SetToken(token TokenType) {
	s.tokenType = token
}

func (s *TokenScanner) Input() string {
	return s.input
}

// Token returns the text of the current token as a substring of Input.
func (s *TokenScanner) Token() string {
	return s.input[s.startIndex:s.curIndex]
}

// TokenLower returns the current token text converted to lowercase.
// Useful for case-insensitive keyword matching.
func (s *TokenScanner) TokenLower() string {
	return strings.ToLower(s.Token())
}

// TokenRune decodes the rune peek bytes after the cursor.
func (s *TokenScanner) TokenRune(peek int) (rune, int) {
	i := s.curIndex + peek
	if i >= len(s.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.input[i:])
}

func (s *TokenScanner) TokenChar() string {
	return s.input[s.curIndex:]
}

// ReservedWord returns the lowercase reserved word if the current token
// is a ReservedWordToken, or an empty string otherwise.
func (s *TokenScanner) ReservedWord() string {
	return s.reservedWord
}

func (s *TokenScanner) SetReservedWord(wrd string) {
	s.reservedWord = wrd
}

func (s *TokenScanner) IncCurIndex(i int) {
	s.curIndex += i
}

// SetCurIndex moves the cursor to the end of input.
func (s *TokenScanner) SetCurIndex() {
	s.curIndex = len(s.input)
}

// StartIndex is the byte offset where the current token begins.
func (s *TokenScanner) StartIndex() int {
	return s.startIndex
}

// StopIndex is the byte offset just past the current token.
func (s *TokenScanner) StopIndex() int {
	return s.curIndex
}

// Start returns the position where the current token begins.
// Line and column are 1-indexed; the column counts characters.
func (s *TokenScanner) Start() Pos {
	return Pos{
		Line:   s.startLine + 1,
		Col:    utf8.RuneCountInString(s.input[s.indexAtStartLine:s.startIndex]) + 1,
		Offset: s.startIndex,
		File:   s.file,
	}
}

// If we just saw the whitespace token that bumped the linecount,
// we are at the "start of line", even if this contains some space after the \n:
func (s *TokenScanner) IsStartOfLine() bool {
	return s.stopLine > s.startLine
}

// Stop returns the position where the current token ends.
// Line and column are 1-indexed.
func (s *TokenScanner) Stop() Pos {
	return Pos{
		Line:   s.stopLine + 1,
		Col:    utf8.RuneCountInString(s.input[s.indexAtStopLine:s.curIndex]) + 1,
		Offset: s.curIndex,
		File:   s.file,
	}
}

// BumpLine increments the line counter and records the byte position
// after the newline character. The offset parameter is the position
// of the newline within the current scan operation.
func (s *TokenScanner) BumpLine(offset int) {
	s.stopLine++
	s.indexAtStopLine = s.curIndex + offset + 1
}

// SkipWhitespaceComments advances past any whitespace and comment tokens.
// Stops when a non-whitespace, non-comment token is encountered.
func (s *TokenScanner) SkipWhitespaceComments() {
	for {
		switch s.CommonTokenType() {
		case WhitespaceToken, MultilineCommentToken, SinglelineCommentToken:
		default:
			return
		}
		s.NextToken()
	}
}

// SkipWhitespace advances past any whitespace tokens.
// Stops when a non-whitespace token is encountered.
// Unlike SkipWhitespaceComments, this preserves comments.
func (s *TokenScanner) SkipWhitespace() {
	for s.CommonTokenType() == WhitespaceToken {
		s.NextToken()
	}
}

// NextNonWhitespaceToken advances to the next token and then skips
// any whitespace, returning the type of the first non-whitespace token.
func (s *TokenScanner) NextNonWhitespaceToken() TokenType {
	s.NextToken()
	s.SkipWhitespace()
	return s.TokenType()
}

// NextNonWhitespaceCommentToken advances to the next token and then skips
// any whitespace and comments, returning the type of the first significant token.
func (s *TokenScanner) NextNonWhitespaceCommentToken() TokenType {
	s.NextToken()
	s.SkipWhitespaceComments()
	return s.TokenType()
}

// ScanMultilineComment assumes one has advanced over '/*'. With nested set,
// every inner '/*' must be closed before the comment ends.
func (s *TokenScanner) ScanMultilineComment(nested bool) TokenType {
	depth := 1
	chars := s.input[s.curIndex:]
	for i := 0; i < len(chars); i++ {
		switch {
		case chars[i] == '\n':
			s.BumpLine(i)
		case chars[i] == '*' && i+1 < len(chars) && chars[i+1] == '/':
			depth--
			i++
			if depth == 0 {
				s.curIndex += i + 1
				return MultilineCommentToken
			}
		case nested && chars[i] == '/' && i+1 < len(chars) && chars[i+1] == '*':
			depth++
			i++
		}
	}
	s.curIndex = len(s.input)
	return UnterminatedCommentErrorToken
}

// ScanSinglelineComment assumes one has advanced over the comment opener.
// The terminating newline is left for the following whitespace token.
func (s *TokenScanner) ScanSinglelineComment() TokenType {
	end := strings.IndexByte(s.input[s.curIndex:], '\n')
	if end == -1 {
		// end of file is also end of stopLine. But we're done
		s.curIndex = len(s.input)
	} else {
		s.curIndex += end
	}
	return SinglelineCommentToken
}

func (s *TokenScanner) ScanWhitespace() TokenType {
	for i, r := range s.input[s.curIndex:] {
		if r == '\n' {
			s.BumpLine(i)
		}
		if !unicode.IsSpace(r) {
			s.curIndex += i
			return WhitespaceToken
		}
	}
	// eof
	s.curIndex = len(s.input)
	return WhitespaceToken
}

// ScanDelimited assumes the opening delimiter has been consumed and scans
// through the matching endmarker. A doubled endmarker is an escaped
// endmarker when doubling is set; a backslash escapes the next character
// when backslash is set. Returns tokenType, or unterminated if input ends
// first.
func (s *TokenScanner) ScanDelimited(endmarker rune, doubling, backslash bool, tokenType, unterminated TokenType) TokenType {
	chars := s.input[s.curIndex:]
	skipnext := false
	for i, r := range chars {
		if r == '\n' {
			s.BumpLine(i)
		}
		if skipnext {
			skipnext = false
			continue
		}
		if backslash && r == '\\' {
			skipnext = true
			continue
		}
		if r == endmarker {
			w := utf8.RuneLen(r)
			if doubling {
				r2, _ := utf8.DecodeRuneInString(chars[i+w:]) // RuneError at eof
				if r2 == endmarker {
					skipnext = true
					continue
				}
			}
			s.curIndex += i + w
			return tokenType
		}
	}
	s.curIndex = len(s.input)
	return unterminated
}

// ScanUntil assumes the opener has been consumed and scans through the
// first occurrence of closer, with no escapes. Used for dollar quoting and
// triple quoted strings.
func (s *TokenScanner) ScanUntil(closer string, tokenType, unterminated TokenType) TokenType {
	chars := s.input[s.curIndex:]
	end := strings.Index(chars, closer)
	if end == -1 {
		s.bumpLines(chars)
		s.curIndex = len(s.input)
		return unterminated
	}
	s.bumpLines(chars[:end])
	s.curIndex += end + len(closer)
	return tokenType
}

func (s *TokenScanner) bumpLines(chars string) {
	for i := 0; i < len(chars); i++ {
		if chars[i] == '\n' {
			s.BumpLine(i)
		}
	}
}

// ScanIdentifier assumes the first character of an identifier has been
// consumed and scans to its end. extra admits dialect specific
// continuation characters such as '$' or '#'.
func (s *TokenScanner) ScanIdentifier(extra func(rune) bool) {
	for i, r := range s.input[s.curIndex:] {
		if !(xid.Continue(r) || unicode.Is(unicode.Cf, r) || (extra != nil && extra(r))) {
			s.curIndex += i
			return
		}
	}
	s.curIndex = len(s.input)
}

// ClassifyWord returns ReservedWordToken (recording the lowercase word) if
// the current token is in reserved, otherwise UnquotedIdentifierToken.
func (s *TokenScanner) ClassifyWord(reserved map[string]struct{}) TokenType {
	word := strings.ToLower(s.Token())
	if _, ok := reserved[word]; ok {
		s.SetReservedWord(word)
		return ReservedWordToken
	}
	return UnquotedIdentifierToken
}

var numberRegexp = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ScanNumber scans a numeric literal at the cursor. Callers make sure the
// cursor is at a digit, or a sign or dot followed by a digit.
func (s *TokenScanner) ScanNumber() TokenType {
	loc := numberRegexp.FindStringIndex(s.input[s.curIndex:])
	if len(loc) == 0 {
		panic("should always have a match according to regex and conditions in caller")
	}
	s.curIndex += loc[1]
	return NumberToken
}

// ScanNonUTF8 consumes one byte of invalid input so the scanner never stalls.
func (s *TokenScanner) ScanNonUTF8() TokenType {
	s.curIndex++
	return NonUTF8ErrorToken
}
