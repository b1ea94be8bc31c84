package mssql

import "github.com/vippsas/sqltext/sqlparser/sqldocument"

// T-SQL specific tokens (range 1000-1999)
//
// Token values are partitioned by dialect to avoid collisions:
//   - 0-999:    Common tokens shared across dialects (sqldocument package)
//   - 1000-1999: T-SQL specific tokens (this package)
//   - 2000-2999: PostgreSQL specific tokens (pgsql package)
const (
	// T-SQL distinguishes between varchar ('...') and nvarchar (N'...')
	// string literals. Both use single quotes with '' as the escape sequence.
	VarcharLiteralToken sqldocument.TokenType = iota + sqldocument.TSQLTokenStart
	NVarcharLiteralToken

	// T-SQL uses square brackets for quoted identifiers: [My Table]
	// Brackets are escaped by doubling: [My]]Table] represents "My]Table"
	BracketQuotedIdentifierToken

	// GO on a line of its own separates batches; sqlcmd and SSMS never
	// send it to the server.
	BatchSeparatorToken

	// Anything following GO on the same line.
	MalformedBatchSeparatorToken
)

// ToCommonToken maps T-SQL specific tokens to their common equivalents
// for dialect-agnostic processing.
func ToCommonToken(tt sqldocument.TokenType) sqldocument.TokenType {
	switch tt {
	case VarcharLiteralToken, NVarcharLiteralToken:
		return sqldocument.StringLiteralToken
	case BracketQuotedIdentifierToken:
		return sqldocument.QuotedIdentifierToken
	case BatchSeparatorToken, MalformedBatchSeparatorToken:
		return sqldocument.OtherToken
	default:
		return tt
	}
}
