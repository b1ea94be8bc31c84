package ansi

// Rules are the lexical conventions of one dialect. The zero value scans
// nothing but code; use one of the presets.
type Rules struct {
	Name string

	// StringQuotes open string literals, IdentifierQuotes open quoted
	// identifiers. Both are closed by the same character.
	StringQuotes     string
	IdentifierQuotes string

	// Brackets enables [identifier] quoting.
	Brackets bool

	// BackslashEscapes makes a backslash inside a string escape the next
	// character. DoubledQuotes makes two closing quotes in a row an escaped
	// quote. A dialect may have both.
	BackslashEscapes bool
	DoubledQuotes    bool

	HashComments   bool // # to end of line
	SlashComments  bool // // to end of line
	NestedComments bool // /* /* */ */

	// DashNeedsSpace makes -- start a comment only when followed by
	// whitespace or the end of input, so that 1--1 is arithmetic.
	DashNeedsSpace bool

	TripleQuotes bool // '''...''' and """..."""
	DollarQuotes bool // $$...$$
}

var (
	Standard = Rules{
		Name:             "standard",
		StringQuotes:     `'`,
		IdentifierQuotes: `"`,
		DoubledQuotes:    true,
	}

	MySQL = Rules{
		Name:             "mysql",
		StringQuotes:     `'"`,
		IdentifierQuotes: "`",
		BackslashEscapes: true,
		DoubledQuotes:    true,
		HashComments:     true,
		DashNeedsSpace:   true,
	}

	SQLite = Rules{
		Name:             "sqlite",
		StringQuotes:     `'`,
		IdentifierQuotes: "\"`",
		Brackets:         true,
		DoubledQuotes:    true,
	}

	BigQuery = Rules{
		Name:             "bigquery",
		StringQuotes:     `'"`,
		IdentifierQuotes: "`",
		BackslashEscapes: true,
		HashComments:     true,
		TripleQuotes:     true,
	}

	Snowflake = Rules{
		Name:             "snowflake",
		StringQuotes:     `'`,
		IdentifierQuotes: `"`,
		BackslashEscapes: true,
		DoubledQuotes:    true,
		SlashComments:    true,
		DollarQuotes:     true,
	}
)
