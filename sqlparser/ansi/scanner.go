package ansi

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// Scanner is a lexical scanner for the dialects without a dedicated
// scanner: standard SQL, MySQL and MariaDB, SQLite, BigQuery, Snowflake
// and Oracle. Quote characters, escapes and comment styles come from Rules.
type Scanner struct {
	sqldocument.TokenScanner
	rules Rules
}

var _ sqldocument.Scanner = (*Scanner)(nil)

// NewScanner creates a new Scanner following rules for the given source file
// and input string. The scanner is positioned before the first token; call
// NextToken() to advance.
func NewScanner(file sqldocument.FileRef, input string, rules Rules) *Scanner {
	s := &Scanner{rules: rules}
	s.Init(file, input, s.nextToken, ToCommonToken)
	return s
}

// Rules returns the lexical rules of the scanner.
func (s *Scanner) Rules() Rules {
	return s.rules
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
	case strings.ContainsRune(s.rules.StringQuotes, r):
		return s.scanString(r)
	case strings.ContainsRune(s.rules.IdentifierQuotes, r):
		s.IncCurIndex(w)
		tt := sqldocument.QuotedIdentifierToken
		if r == '`' {
			tt = BacktickQuotedIdentifierToken
		}
		return s.ScanDelimited(r, true, false, tt, sqldocument.UnterminatedIdentifierErrorToken)
	case s.rules.Brackets && r == '[':
		s.IncCurIndex(w)
		return s.ScanDelimited(']', false, false, BracketQuotedIdentifierToken, sqldocument.UnterminatedIdentifierErrorToken)
	case isDigit(r):
		return s.ScanNumber()
	case unicode.IsSpace(r):
		return s.ScanWhitespace()
	case r == '/' && r2 == '*':
		s.IncCurIndex(w + w2)
		return s.ScanMultilineComment(s.rules.NestedComments)
	case r == '-' && r2 == '-' && s.dashComment(w+w2),
		s.rules.SlashComments && r == '/' && r2 == '/':
		s.IncCurIndex(w + w2)
		return s.ScanSinglelineComment()
	case s.rules.HashComments && r == '#':
		s.IncCurIndex(w)
		return s.ScanSinglelineComment()
	case s.rules.DollarQuotes && r == '$' && r2 == '$':
		s.IncCurIndex(w + w2)
		return s.ScanUntil("$$", DollarQuotedStringToken, sqldocument.UnterminatedStringErrorToken)
	case r == '?':
		s.IncCurIndex(w)
		return ParameterToken
	case (r == ':' || r == '@' || r == '$') && (xid.Start(r2) || r2 == '_' || isDigit(r2)):
		s.IncCurIndex(w + w2)
		s.ScanIdentifier(nil)
		return ParameterToken
	case xid.Start(r) || r == '_':
		s.IncCurIndex(w)
		s.ScanIdentifier(isIdentExtra)
		return s.ClassifyWord(reservedWords)
	}

	s.IncCurIndex(w)
	return sqldocument.OtherToken
}

func (s *Scanner) dashComment(peek int) bool {
	if !s.rules.DashNeedsSpace {
		return true
	}
	r, w := s.TokenRune(peek)
	return w == 0 || unicode.IsSpace(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentExtra(r rune) bool {
	return r == '$'
}

// scanString scans a string literal opened by quote, which is at the cursor.
func (s *Scanner) scanString(quote rune) sqldocument.TokenType {
	if s.rules.TripleQuotes {
		triple := strings.Repeat(string(quote), 3)
		if strings.HasPrefix(s.TokenChar(), triple) {
			s.IncCurIndex(3)
			return s.ScanUntil(triple, TripleQuotedStringToken, sqldocument.UnterminatedStringErrorToken)
		}
	}
	s.IncCurIndex(utf8.RuneLen(quote))
	return s.ScanDelimited(quote, s.rules.DoubledQuotes, s.rules.BackslashEscapes,
		sqldocument.StringLiteralToken, sqldocument.UnterminatedStringErrorToken)
}
