package sqldocument

// Scanner defines the interface for lexical scanning of SQL source code.
//
// Implementations return dialect-specific tokens from TokenType(),
// but CommonTokenType() maps these to common tokens for dialect-agnostic code
// such as Classify, the minifier and the validator's location helpers.
type Scanner interface {
	// TokenType returns the type of the current token.
	// This may return dialect-specific token types.
	TokenType() TokenType

	// CommonTokenType returns the current token type in the common range.
	CommonTokenType() TokenType

	// Input returns the whole text being scanned.
	Input() string

	// Token returns the text of the current token.
	Token() string

	// TokenLower returns the current token text converted to lowercase.
	TokenLower() string

	// ReservedWord returns the lowercase reserved word if the current token
	// is a ReservedWordToken, or an empty string otherwise.
	ReservedWord() string

	// Start returns the position where the current token begins.
	Start() Pos

	// Stop returns the position where the current token ends.
	Stop() Pos

	// StartIndex and StopIndex are the byte offsets of the current token.
	StartIndex() int
	StopIndex() int

	// NextToken scans the next token and advances the scanner's position.
	NextToken() TokenType

	// NextNonWhitespaceToken advances to the next non-whitespace token.
	NextNonWhitespaceToken() TokenType

	// NextNonWhitespaceCommentToken advances to the next significant token.
	NextNonWhitespaceCommentToken() TokenType

	// SkipWhitespace advances past any whitespace tokens.
	SkipWhitespace()

	// SkipWhitespaceComments advances past any whitespace and comment tokens.
	SkipWhitespaceComments()
}
