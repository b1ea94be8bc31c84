// Package grammar holds the syntax checker of every dialect. Most dialects
// are checked by an external parser library; the rest use the generic
// grammar of this package in the lexical flavor of the dialect.
//
// A Grammar only answers whether a script is well formed. Its errors are
// whatever the underlying parser produces: some carry a structured
// position (SyntaxError), others only a message with position hints in the
// text. The validate package normalizes both.
package grammar

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// Grammar checks the syntax of a script. Parse returns nil for well formed
// input.
type Grammar interface {
	Parse(sql string) error
}

// SyntaxError is a parse failure at a known position.
type SyntaxError struct {
	Message string
	Pos     sqldocument.Pos
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Col)
}

var (
	mu       sync.RWMutex
	handles  map[dialect.Dialect]Grammar
	defaults map[dialect.Dialect]Grammar
)

func init() {
	defaults = make(map[dialect.Dialect]Grammar)
	generic := make(map[string]*Generic)
	for _, info := range dialect.All() {
		switch info.Grammar {
		case dialect.GrammarVitess:
			defaults[info.Dialect] = Vitess{}
		case dialect.GrammarPgQuery:
			defaults[info.Dialect] = PgQuery{}
		default:
			// dialects sharing a flavor share the parser
			f, ok := flavors[info.Dialect]
			if !ok {
				f = ansiFlavor
			}
			if g, ok := generic[f.name]; ok {
				defaults[info.Dialect] = &Generic{dialect: info.Dialect, script: g.script, batch: g.batch}
				continue
			}
			g := NewGeneric(info.Dialect)
			generic[f.name] = g
			defaults[info.Dialect] = g
		}
	}
	reset()
}

func reset() {
	handles = make(map[dialect.Dialect]Grammar, len(defaults))
	for d, g := range defaults {
		handles[d] = g
	}
}

// For returns the grammar of d. It panics for dialects outside the
// registry.
func For(d dialect.Dialect) Grammar {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := handles[d]
	if !ok {
		panic(fmt.Sprintf("grammar: no grammar for %s", d))
	}
	return g
}

// Options configure the grammar table.
type Options struct {
	// SQLServerDSN, when set, makes SQL Server scripts be checked by a
	// server with SET PARSEONLY ON instead of the generic grammar.
	SQLServerDSN string
	// Open opens the connection pool for SQLServerDSN. Nil means
	// sql.Open with the sqlserver driver.
	Open func(dsn string) (*sql.DB, error)
	// Timeout bounds one remote check. Zero means DefaultTimeout.
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

// Configure applies opts to the table. The returned function closes any
// connection pool opened and restores the defaults.
func Configure(opts Options) (func() error, error) {
	if opts.SQLServerDSN == "" {
		return func() error { return nil }, nil
	}
	open := opts.Open
	if open == nil {
		open = func(dsn string) (*sql.DB, error) { return sql.Open("sqlserver", dsn) }
	}
	db, err := open(opts.SQLServerDSN)
	if err != nil {
		return nil, errors.Wrap(err, "open sql server connection pool")
	}
	server := &Server{
		DB:       db,
		Fallback: defaults[dialect.SQLServer],
		Timeout:  opts.Timeout,
		Logger:   opts.Logger,
	}
	mu.Lock()
	handles[dialect.SQLServer] = server
	mu.Unlock()
	return func() error {
		mu.Lock()
		reset()
		mu.Unlock()
		return db.Close()
	}, nil
}
