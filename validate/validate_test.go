package validate

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/grammar"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
	"golang.org/x/sync/errgroup"
)

type fakeGrammar func(sql string) error

func (f fakeGrammar) Parse(sql string) error {
	return f(sql)
}

func failingWith(err error) *Validator {
	logger, _ := test.NewNullLogger()
	return &Validator{
		Logger: logger,
		Grammars: func(dialect.Dialect) grammar.Grammar {
			return fakeGrammar(func(string) error { return err })
		},
	}
}

func TestValidate_Empty(t *testing.T) {
	for _, sql := range []string{"", "   ", "\n\t \r\n"} {
		result := Validate(sql, dialect.Standard)
		assert.False(t, result.IsValid)
		require.NotNil(t, result.Error)
		assert.Equal(t, "Please enter some SQL to validate", result.Error.Message)
		assert.Nil(t, result.Error.Location)
	}
}

func TestValidate_LexicalFaults(t *testing.T) {
	long := "SELECT '" + strings.Repeat("a", 60)
	tests := []struct {
		name     string
		dialect  dialect.Dialect
		sql      string
		message  string
		location Location
	}{
		{"string", dialect.Standard, "SELECT 'abc", "Unterminated quoted string at or near ''abc'", Location{1, 8}},
		{"identifier", dialect.Standard, `SELECT "abc`, `Unterminated quoted identifier at or near '"abc'`, Location{1, 8}},
		{"block comment", dialect.Standard, "SELECT 1 /* x", "Unterminated block comment at or near '/* x'", Location{1, 10}},
		{"second line", dialect.PostgreSQL, "SELECT 1,\n  'abc", "Unterminated quoted string at or near ''abc'", Location{2, 3}},
		{"column counts characters", dialect.Standard, "SELECT 'ø', 'x", "Unterminated quoted string at or near ''x'", Location{1, 13}},
		{"backtick", dialect.MySQL, "SELECT `abc", "Unterminated quoted identifier at or near '`abc'", Location{1, 8}},
		{"bracket", dialect.SQLServer, "SELECT [abc", "Unterminated quoted identifier at or near '[abc'", Location{1, 8}},
		{"truncated preview", dialect.Standard, long, "Unterminated quoted string at or near ''" + strings.Repeat("a", 49) + "...'", Location{1, 8}},
		{"quote in comment is ignored", dialect.Standard, "SELECT 1 -- it's\n, 'x", "Unterminated quoted string at or near ''x'", Location{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.sql, tt.dialect)
			assert.False(t, result.IsValid)
			require.NotNil(t, result.Error)
			assert.Equal(t, tt.message, result.Error.Message)
			require.NotNil(t, result.Error.Location)
			assert.Equal(t, tt.location, *result.Error.Location)
		})
	}
}

func TestValidate_PreviewLength(t *testing.T) {
	v := &Validator{PreviewLength: 3}
	result := v.Validate("SELECT 'abcdef", dialect.Standard)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Unterminated quoted string at or near ''ab...'", result.Error.Message)
}

func TestValidate_EscapedQuote(t *testing.T) {
	for _, d := range []dialect.Dialect{dialect.Standard, dialect.PostgreSQL, dialect.MySQL, dialect.SQLite, dialect.SQLServer} {
		t.Run(d.String(), func(t *testing.T) {
			result := Validate("SELECT 'it''s here'", d)
			assert.True(t, result.IsValid, "%v", result.Error)
			assert.Nil(t, result.Error)
		})
	}
}

func TestValidate_Examples(t *testing.T) {
	for _, info := range dialect.All() {
		t.Run(info.Name, func(t *testing.T) {
			result := Validate(info.Dialect.Example(), info.Dialect)
			assert.True(t, result.IsValid, "%v", result.Error)
		})
	}
}

func TestValidate_MisspelledKeyword(t *testing.T) {
	const sql = "SELECT u.id FROM users u WHER u.active = true"

	result := Validate(sql, dialect.Standard)
	assert.False(t, result.IsValid)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Syntax error at or near 'WHER'", result.Error.Message)
	assert.Equal(t, &Location{Line: 1, Column: 26}, result.Error.Location)

	result = Validate(sql, dialect.PostgreSQL)
	require.NotNil(t, result.Error)
	assert.Equal(t, `Syntax error at or near "WHER"`, result.Error.Message)
	assert.Equal(t, &Location{Line: 1, Column: 26}, result.Error.Location)

	result = Validate(sql, dialect.MySQL)
	require.NotNil(t, result.Error)
	assert.Contains(t, result.Error.Message, "WHER")
	require.NotNil(t, result.Error.Location)
	assert.Equal(t, 1, result.Error.Location.Line)
}

func TestValidate_EndOfInput(t *testing.T) {
	result := Validate("SELECT *\nFROM", dialect.Standard)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Unexpected end of input near 'FROM'", result.Error.Message)
	assert.Equal(t, &Location{Line: 2, Column: 5}, result.Error.Location)
}

func TestValidate_ErrorShapes(t *testing.T) {
	const sql = "SELECT 1 FORM t"
	tests := []struct {
		name     string
		err      error
		message  string
		location *Location
	}{
		{
			"structured",
			&grammar.SyntaxError{Message: "unexpected token", Pos: sqldocument.Pos{Line: 1, Col: 10}},
			"Syntax error at or near 'FORM'", &Location{1, 10},
		},
		{
			"line and column in message",
			errors.New("Syntax error: unexpected thing at line 1, column 10"),
			"Syntax error at or near 'FORM'", &Location{1, 10},
		},
		{
			"character offset",
			errors.New("syntax error at position 9 near 'FORM'"),
			"Syntax error at or near 'FORM'", &Location{1, 10},
		},
		{
			"near token",
			errors.New("Incorrect syntax near 'FORM'."),
			"Syntax error at or near 'FORM'", &Location{1, 10},
		},
		{
			"quoted token ignoring case",
			errors.New(`unexpected "form"`),
			"Syntax error at or near 'FORM'", &Location{1, 10},
		},
		{
			"already specific",
			errors.New(`syntax error at or near "FORM"`),
			`Syntax error at or near "FORM"`, &Location{1, 10},
		},
		{
			"expected but found",
			errors.New(`Expected "FROM" but "x" found.`),
			"Syntax error at or near 'x'", nil,
		},
		{
			"no location",
			errors.New("something broke"),
			"Something broke", nil,
		},
		{
			"nothing at all",
			errors.New(""),
			"Syntax error in query", nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failingWith(tt.err).Validate(sql, dialect.Standard)
			assert.False(t, result.IsValid)
			require.NotNil(t, result.Error)
			assert.Equal(t, tt.message, result.Error.Message)
			assert.Equal(t, tt.location, result.Error.Location)
		})
	}
}

func TestValidate_RecoversParserPanic(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string", "boom"},
		{"error", errors.New(`1:12: branch "DISTINCT"? was accepted but did not progress the lexer`)},
		{"runtime", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			v := &Validator{
				Logger: logger,
				Grammars: func(dialect.Dialect) grammar.Grammar {
					return fakeGrammar(func(string) error { panic(tt.value) })
				},
			}
			result := v.Validate("SELECT NOW()", dialect.Standard)
			assert.False(t, result.IsValid)
			require.NotNil(t, result.Error)
			assert.Equal(t, "Syntax error in query", result.Error.Message)
			assert.Nil(t, result.Error.Location)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.ErrorLevel, entry.Level)
			assert.Contains(t, entry.Message, "parser panic")
		})
	}
}

func TestValidate_LogsStrategy(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	v := failingWith(errors.New("Incorrect syntax near 'FORM'."))
	v.Logger = logger

	v.Validate("SELECT 1 FORM t", dialect.SQLServer)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "near-token", entry.Data["strategy"])
	assert.Equal(t, "transactsql", entry.Data["dialect"])
}

func TestValidate_InvalidDialectPanics(t *testing.T) {
	assert.Panics(t, func() { Validate("SELECT 1", dialect.Dialect(42)) })
}

func TestValidate_Concurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		d := dialect.All()[i%len(dialect.All())].Dialect
		g.Go(func() error {
			if result := Validate(d.Example(), d); !result.IsValid {
				return errors.Errorf("%s: %s", d, result.Error)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "Oops", Diagnostic{Message: "Oops"}.String())
	assert.Equal(t, "Error at line 2, column 5. Details: Oops",
		Diagnostic{Message: "Oops", Location: &Location{2, 5}}.String())
}

func TestValidate_AlwaysHasMessage(t *testing.T) {
	inputs := []string{
		")",
		"SELECT",
		"SELECT (((",
		"FROM users",
		"SELECT 1 +",
		"\x00\xff\xfe",
		"SELECT * FROM t WHERE a = 'x' AND",
		"INSERT INTO",
		"CREATE TABLE t (",
		";;;",
		"SELECT ø FROM ß WHERE",
	}
	for _, info := range dialect.All() {
		for _, sql := range inputs {
			result := Validate(sql, info.Dialect)
			if result.IsValid {
				continue
			}
			require.NotNil(t, result.Error, "%s: %q", info.Name, sql)
			assert.NotEmpty(t, result.Error.Message, "%s: %q", info.Name, sql)
			if loc := result.Error.Location; loc != nil {
				assert.GreaterOrEqual(t, loc.Line, 1)
				assert.GreaterOrEqual(t, loc.Column, 1)
			}
		}
	}
}

func TestValidate_ZeroArgumentCalls(t *testing.T) {
	tests := []struct {
		dialect dialect.Dialect
		sql     string
	}{
		{dialect.Standard, "SELECT NOW()"},
		{dialect.Oracle, "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t"},
		{dialect.SQLite, "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t"},
		{dialect.SQLServer, "SELECT GETDATE()"},
		{dialect.BigQuery, "SELECT CURRENT_TIMESTAMP()"},
		{dialect.Snowflake, "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.String(), func(t *testing.T) {
			result := Validate(tt.sql, tt.dialect)
			assert.True(t, result.IsValid, "%v", result.Error)
		})
	}
}
