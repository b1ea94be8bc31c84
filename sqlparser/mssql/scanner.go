package mssql

import (
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// Scanner is a lexical scanner for T-SQL source code.
//
// The scanner handles T-SQL specific constructs including:
//   - String literals ('...' and N'...')
//   - Quoted identifiers ([...] and "...")
//   - Single-line (--) and nested multi-line (/* */) comments
//   - Batch separators (GO)
//   - Reserved words
//   - Variables (@identifier)
type Scanner struct {
	sqldocument.TokenScanner

	// The GO batch separator must appear at the start of a line and
	// nothing except whitespace can follow it on the same line.
	startOfLine         bool // True if no non-whitespace/comment seen since start of line
	afterBatchSeparator bool // True if we just saw GO; used to detect malformed separators
}

var _ sqldocument.Scanner = (*Scanner)(nil)

// NewScanner creates a new Scanner for the given T-SQL source file and input string.
// The scanner is positioned before the first token; call NextToken() to advance.
func NewScanner(file sqldocument.FileRef, input string) *Scanner {
	s := &Scanner{startOfLine: true}
	s.Init(file, input, s.nextBatchToken, ToCommonToken)
	return s
}

// Clone returns a copy of the scanner at its current position.
func (s Scanner) Clone() *Scanner {
	result := new(Scanner)
	*result = s
	result.Rebind(result.nextBatchToken)
	return result
}

// nextBatchToken wraps the raw tokenization with batch separator handling.
// GO is not processed inside [names], 'strings' or /*comments*/, and
// comments on the same line as GO make it malformed.
func (s *Scanner) nextBatchToken() sqldocument.TokenType {
	tt := s.nextToken()

	switch {
	case s.startOfLine && tt == sqldocument.UnquotedIdentifierToken && s.TokenLower() == "go":
		tt = BatchSeparatorToken
		s.afterBatchSeparator = true
	case s.afterBatchSeparator && tt != sqldocument.WhitespaceToken && tt != sqldocument.EOFToken:
		tt = MalformedBatchSeparatorToken
	case tt == sqldocument.WhitespaceToken:
		if s.IsStartOfLine() {
			s.startOfLine = true
			s.afterBatchSeparator = false
		}
	default:
		s.startOfLine = false
	}
	return tt
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
		return s.scanStringLiteral(VarcharLiteralToken)
	case r == 'N' && r2 == '\'':
		// only upper-case N allowed
		s.IncCurIndex(w + w2)
		return s.scanStringLiteral(NVarcharLiteralToken)
	case isDigit(r):
		return s.ScanNumber()
	case r == '[':
		s.IncCurIndex(w)
		return s.ScanDelimited(']', true, false, BracketQuotedIdentifierToken, sqldocument.UnterminatedIdentifierErrorToken)
	case r == '"':
		// QUOTED_IDENTIFIER is on by default
		s.IncCurIndex(w)
		return s.ScanDelimited('"', true, false, sqldocument.QuotedIdentifierToken, sqldocument.UnterminatedIdentifierErrorToken)
	case unicode.IsSpace(r):
		return s.ScanWhitespace()
	case r == '/' && r2 == '*':
		s.IncCurIndex(w + w2)
		return s.ScanMultilineComment(true)
	case r == '-' && r2 == '-':
		s.IncCurIndex(w + w2)
		return s.ScanSinglelineComment()
	case r == '@':
		s.IncCurIndex(w)
		s.ScanIdentifier(isIdentExtra)
		return sqldocument.VariableIdentifierToken
	case xid.Start(r) || r == '_' || r == '＿' || r == '#':
		// good guide for identifiers:
		// https://sqlquantumleap.com/reference/completely-complete-list-of-rules-for-t-sql-identifiers/
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
	return r == '$' || r == '#' || r == '@'
}

// scanStringLiteral assumes one has scanned ' or N' (depending on param);
// then scans until the end of the string
func (s *Scanner) scanStringLiteral(tokenType sqldocument.TokenType) sqldocument.TokenType {
	return s.ScanDelimited('\'', true, false, tokenType, sqldocument.UnterminatedStringErrorToken)
}

// Batches splits input at GO batch separators, returning the text of every
// non-empty batch together with the byte offset where it starts.
func Batches(input string) (batches []string, offsets []int) {
	s := NewScanner("", input)
	start := 0
	flush := func(stop int) {
		batch := input[start:stop]
		for _, r := range batch {
			if !unicode.IsSpace(r) {
				batches = append(batches, batch)
				offsets = append(offsets, start)
				return
			}
		}
	}
	for tt := s.NextToken(); tt != sqldocument.EOFToken; tt = s.NextToken() {
		if tt == BatchSeparatorToken {
			flush(s.StartIndex())
			start = s.StopIndex()
		}
	}
	flush(len(input))
	return
}
