// Package sqlparser picks the lexical scanner of a dialect. The scanners
// themselves live in the ansi, pgsql and mssql packages and share the cursor
// and token vocabulary of sqldocument.
package sqlparser

import (
	"fmt"

	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/sqlparser/ansi"
	"github.com/vippsas/sqltext/sqlparser/mssql"
	"github.com/vippsas/sqltext/sqlparser/pgsql"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// ansiRules holds the rules of the dialects of FamilyANSI.
var ansiRules = map[dialect.Dialect]ansi.Rules{
	dialect.Standard:  ansi.Standard,
	dialect.MySQL:     ansi.MySQL,
	dialect.MariaDB:   ansi.MySQL,
	dialect.SQLite:    ansi.SQLite,
	dialect.BigQuery:  ansi.BigQuery,
	dialect.Snowflake: ansi.Snowflake,
	dialect.Oracle:    ansi.Standard,
}

// NewScanner returns a scanner for d positioned before the first token of
// input.
func NewScanner(d dialect.Dialect, file sqldocument.FileRef, input string) sqldocument.Scanner {
	switch d.Info().Family {
	case dialect.FamilyPostgres:
		return pgsql.NewScanner(file, input)
	case dialect.FamilyTSQL:
		return mssql.NewScanner(file, input)
	case dialect.FamilyANSI:
		rules, ok := ansiRules[d]
		if !ok {
			panic(fmt.Sprintf("sqlparser: no lexical rules for %s", d))
		}
		return ansi.NewScanner(file, input, rules)
	}
	panic(fmt.Sprintf("sqlparser: unknown family of %s", d))
}

// Classify splits input into spans of code, literals and comments following
// the lexical rules of d.
func Classify(d dialect.Dialect, input string) sqldocument.Spans {
	return sqldocument.Classify(NewScanner(d, "", input))
}

// IsReserved reports whether word is reserved in d.
func IsReserved(d dialect.Dialect, word string) bool {
	switch d.Info().Family {
	case dialect.FamilyPostgres:
		return pgsql.IsReserved(word)
	case dialect.FamilyTSQL:
		return mssql.IsReserved(word)
	}
	return ansi.IsReserved(word)
}
