// Package dialect is the fixed registry of SQL dialects understood by sqltext.
//
// A Dialect selects two things: the lexical rules used when scanning text
// (quote characters, escapes, comment styles) and the grammar used by the
// validator. The set is closed; it is built once at package initialisation
// and never changes at runtime.
package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// Dialect identifies one supported SQL syntax variant.
type Dialect int

const (
	Standard Dialect = iota
	MySQL
	MariaDB
	PostgreSQL
	SQLServer
	SQLite
	BigQuery
	Redshift
	Snowflake
	Oracle
)

// Family groups dialects that share lexical rules.
type Family int

const (
	// FamilyANSI dialects are scanned by the rule driven ansi scanner.
	FamilyANSI Family = iota
	// FamilyPostgres dialects are scanned by the pgsql scanner.
	FamilyPostgres
	// FamilyTSQL dialects are scanned by the mssql scanner.
	FamilyTSQL
)

// GrammarKind selects the external grammar used to check syntax.
type GrammarKind int

const (
	GrammarGeneric GrammarKind = iota
	GrammarVitess
	GrammarPgQuery
)

// ErrUnknownDialect is returned by Parse for names outside the registry.
var ErrUnknownDialect = errors.New("unknown SQL dialect")

// Info describes a registry entry.
type Info struct {
	Dialect Dialect
	Name    string   // canonical name, as used in config files and flags
	Label   string   // human readable label
	Aliases []string // additional accepted names
	Family  Family
	Grammar GrammarKind
	// Converter is true for dialects offered as source or target of
	// AI assisted conversion.
	Converter bool
}

var registry = []Info{
	{Dialect: Standard, Name: "standard", Label: "Standard SQL", Aliases: []string{"ansi", "sql"}, Family: FamilyANSI, Grammar: GrammarGeneric},
	{Dialect: MySQL, Name: "mysql", Label: "MySQL", Family: FamilyANSI, Grammar: GrammarVitess, Converter: true},
	{Dialect: MariaDB, Name: "mariadb", Label: "MariaDB", Family: FamilyANSI, Grammar: GrammarVitess, Converter: true},
	{Dialect: PostgreSQL, Name: "postgresql", Label: "PostgreSQL", Aliases: []string{"postgres", "pg"}, Family: FamilyPostgres, Grammar: GrammarPgQuery, Converter: true},
	{Dialect: SQLServer, Name: "transactsql", Label: "SQL Server", Aliases: []string{"sqlserver", "tsql", "mssql"}, Family: FamilyTSQL, Grammar: GrammarGeneric, Converter: true},
	{Dialect: SQLite, Name: "sqlite", Label: "SQLite", Family: FamilyANSI, Grammar: GrammarGeneric, Converter: true},
	{Dialect: BigQuery, Name: "bigquery", Label: "BigQuery", Family: FamilyANSI, Grammar: GrammarGeneric},
	{Dialect: Redshift, Name: "redshift", Label: "Amazon Redshift", Family: FamilyPostgres, Grammar: GrammarPgQuery},
	{Dialect: Snowflake, Name: "snowflake", Label: "Snowflake", Family: FamilyANSI, Grammar: GrammarGeneric},
	{Dialect: Oracle, Name: "oracle", Label: "Oracle", Aliases: []string{"plsql"}, Family: FamilyANSI, Grammar: GrammarGeneric},
}

var byName = func() map[string]Dialect {
	m := make(map[string]Dialect, len(registry)*2)
	for _, info := range registry {
		m[info.Name] = info.Dialect
		for _, alias := range info.Aliases {
			m[alias] = info.Dialect
		}
	}
	return m
}()

// Parse looks up a dialect by canonical name or alias, ignoring case.
func Parse(name string) (Dialect, error) {
	d, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return d, nil
}

// MustParse is like Parse but panics on unknown names. Meant for
// package level variables and tests.
func MustParse(name string) Dialect {
	d, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return d
}

// All returns every registry entry in registry order.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// ConverterDialects returns the entries offered by the converter.
func ConverterDialects() []Info {
	var out []Info
	for _, info := range registry {
		if info.Converter {
			out = append(out, info)
		}
	}
	return out
}

// Valid reports whether d is a member of the registry.
func (d Dialect) Valid() bool {
	return d >= 0 && int(d) < len(registry)
}

// Info returns the registry entry of d. It panics for values outside
// the registry; those can only come from a programming error.
func (d Dialect) Info() Info {
	if !d.Valid() {
		panic(fmt.Sprintf("dialect: invalid value %d", int(d)))
	}
	return registry[d]
}

func (d Dialect) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
	return registry[d].Name
}

// Label is the human readable name, e.g. "SQL Server".
func (d Dialect) Label() string {
	return d.Info().Label
}

// MarshalText implements encoding.TextMarshaler so dialects can be used
// directly in yaml configuration.
func (d Dialect) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDialect, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
