package ansi

import "github.com/vippsas/sqltext/sqlparser/sqldocument"

// Tokens of the rule driven scanner (range 3000-3999)
const (
	// `identifier` (MySQL, SQLite, BigQuery)
	BacktickQuotedIdentifierToken sqldocument.TokenType = iota + sqldocument.ANSITokenStart

	// [identifier] (SQLite)
	BracketQuotedIdentifierToken

	// '''...''' and """...""" (BigQuery)
	TripleQuotedStringToken

	// $$...$$ (Snowflake)
	DollarQuotedStringToken

	// ?, :name, @name and $1 placeholders
	ParameterToken
)

// ToCommonToken maps tokens of this package to their common equivalents.
func ToCommonToken(tt sqldocument.TokenType) sqldocument.TokenType {
	switch tt {
	case BacktickQuotedIdentifierToken, BracketQuotedIdentifierToken:
		return sqldocument.QuotedIdentifierToken
	case TripleQuotedStringToken, DollarQuotedStringToken:
		return sqldocument.StringLiteralToken
	case ParameterToken:
		return sqldocument.VariableIdentifierToken
	default:
		return tt
	}
}
