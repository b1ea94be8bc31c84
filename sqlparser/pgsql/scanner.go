package pgsql

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// Scanner is a lexical scanner for PostgreSQL 17, also used for Redshift.
//
// The scanner handles PostgreSQL specific constructs including:
//   - String literals ('...' with ” escape, E'...' with backslash escapes)
//   - Dollar-quoted strings ($$...$$, $tag$...$tag$)
//   - Quoted identifiers ("...")
//   - Single-line (--) and nested multi-line (/* */) comments
//   - Reserved words
//   - Positional parameters ($1, $2, etc.)
type Scanner struct {
	sqldocument.TokenScanner
}

var _ sqldocument.Scanner = (*Scanner)(nil)

// NewScanner creates a new Scanner for the given PostgreSQL source file and input string.
// The scanner is positioned before the first token; call NextToken() to advance.
func NewScanner(file sqldocument.FileRef, input string) *Scanner {
	s := &Scanner{}
	s.Init(file, input, s.nextToken, ToCommonToken)
	return s
}

// Clone returns a copy of the scanner at its current position.
func (s Scanner) Clone() *Scanner {
	result := new(Scanner)
	*result = s
	result.Rebind(result.nextToken)
	return result
}

func (s *Scanner) nextToken() sqldocument.TokenType {
	s.IncIndexes()
	r, w := s.TokenRune(0)
	r2, w2 := s.TokenRune(w)

	switch {
	case r == utf8.RuneError && w == 0:
		return sqldocument.EOFToken
	case r == utf8.RuneError && w == 1:
		return s.ScanNonUTF8()
	case r == '(':
		s.IncCurIndex(w)
		return sqldocument.LeftParenToken
	case r == ')':
		s.IncCurIndex(w)
		return sqldocument.RightParenToken
	case r == ';':
		s.IncCurIndex(w)
		return sqldocument.SemicolonToken
	case r == '=':
		s.IncCurIndex(w)
		return sqldocument.EqualToken
	case r == ',':
		s.IncCurIndex(w)
		return sqldocument.CommaToken
	case r == '.' && isDigit(r2):
		return s.ScanNumber()
	case r == '.':
		s.IncCurIndex(w)
		return sqldocument.DotToken
	case r == '\'':
		s.IncCurIndex(w)
		return s.scanString(false, sqldocument.StringLiteralToken)
	case r == '"':
		s.IncCurIndex(w)
		return s.scanQuotedIdentifier()
	case r == '$':
		return s.scanDollarToken()
	case isDigit(r):
		return s.ScanNumber()
	case unicode.IsSpace(r):
		return s.ScanWhitespace()
	case r == '/' && r2 == '*':
		s.IncCurIndex(w + w2)
		return s.ScanMultilineComment(true)
	case r == '-' && r2 == '-':
		s.IncCurIndex(w + w2)
		return s.ScanSinglelineComment()
	case r == ':' && r2 == ':':
		s.IncCurIndex(w + w2)
		return TypeCastToken
	case r2 == '\'' && (r == 'E' || r == 'e'):
		s.IncCurIndex(w + w2)
		return s.scanString(true, EscapeStringLiteralToken)
	case r2 == '\'' && (r == 'B' || r == 'b'):
		s.IncCurIndex(w + w2)
		return s.scanString(false, BitStringLiteralToken)
	case r2 == '\'' && (r == 'X' || r == 'x'):
		s.IncCurIndex(w + w2)
		return s.scanString(false, HexStringLiteralToken)
	case (r == 'U' || r == 'u') && r2 == '&':
		// U&'...' Unicode string or U&"..." Unicode identifier
		r3, w3 := s.TokenRune(w + w2)
		switch r3 {
		case '\'':
			s.IncCurIndex(w + w2 + w3)
			return s.scanString(false, sqldocument.StringLiteralToken)
		case '"':
			s.IncCurIndex(w + w2 + w3)
			return s.scanQuotedIdentifier()
		}
		s.IncCurIndex(w)
		s.ScanIdentifier(isIdentExtra)
		return s.ClassifyWord(reservedWords)
	case xid.Start(r) || r == '_':
		s.IncCurIndex(w)
		s.ScanIdentifier(isIdentExtra)
		return s.ClassifyWord(reservedWords)
	}

	s.IncCurIndex(w)
	return sqldocument.OtherToken
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentExtra(r rune) bool {
	return r == '$'
}

// scanString scans a '...' literal after the opening quote. Doubled quotes
// are always escapes; backslash escapes only apply to E'...' strings.
func (s *Scanner) scanString(backslash bool, tokenType sqldocument.TokenType) sqldocument.TokenType {
	return s.ScanDelimited('\'', true, backslash, tokenType, sqldocument.UnterminatedStringErrorToken)
}

func (s *Scanner) scanQuotedIdentifier() sqldocument.TokenType {
	return s.ScanDelimited('"', true, false, sqldocument.QuotedIdentifierToken, sqldocument.UnterminatedIdentifierErrorToken)
}

// scanDollarToken scans either a dollar-quoted string or a positional parameter.
func (s *Scanner) scanDollarToken() sqldocument.TokenType {
	s.IncCurIndex(1)
	chars := s.TokenChar()

	if len(chars) > 0 && isDigit(rune(chars[0])) {
		end := strings.IndexFunc(chars, func(r rune) bool { return !isDigit(r) })
		if end == -1 {
			s.SetCurIndex()
		} else {
			s.IncCurIndex(end)
		}
		return PositionalParameterToken
	}

	// The tag is everything up to the next $, and must be an identifier
	tagEnd := strings.IndexByte(chars, '$')
	if tagEnd == -1 {
		return sqldocument.OtherToken
	}
	tag := chars[:tagEnd]
	for i, r := range tag {
		if !(xid.Continue(r) || (i == 0 && xid.Start(r)) || r == '_') || (i == 0 && isDigit(r)) {
			return sqldocument.OtherToken
		}
	}
	s.IncCurIndex(tagEnd + 1)
	return s.ScanUntil("$"+tag+"$", DollarQuotedStringToken, sqldocument.UnterminatedStringErrorToken)
}
