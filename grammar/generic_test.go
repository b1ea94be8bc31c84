package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vippsas/sqltext/dialect"
)

func TestGeneric_Valid(t *testing.T) {
	tests := []struct {
		dialect dialect.Dialect
		sql     string
	}{
		{dialect.Standard, "SELECT 1"},
		{dialect.Standard, "select lower(name) from users"},
		{dialect.Standard, "SELECT u.id, u.name AS n FROM users u WHERE u.active = true ORDER BY u.name DESC LIMIT 10"},
		{dialect.Standard, "SELECT 'it''s here'"},
		{dialect.Standard, "WITH t AS (SELECT 1 AS x) SELECT x FROM t"},
		{dialect.Standard, "SELECT a FROM t1 LEFT JOIN t2 ON t1.id = t2.id CROSS JOIN t3"},
		{dialect.Standard, "SELECT t.* FROM t WHERE a IN (SELECT b FROM u) AND c NOT IN (1, 2)"},
		{dialect.Standard, "INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y')"},
		{dialect.Standard, "UPDATE t SET a = a + 1, b = NULL WHERE c BETWEEN 1 AND 10"},
		{dialect.Standard, "DELETE FROM t WHERE a IS NOT NULL"},
		{dialect.Standard, "CREATE TABLE t (id INT PRIMARY KEY, name VARCHAR(20) NOT NULL DEFAULT 'x', CONSTRAINT fk FOREIGN KEY (id) REFERENCES u (id) ON DELETE CASCADE)"},
		{dialect.Standard, "CREATE VIEW v AS SELECT a FROM t"},
		{dialect.Standard, "CREATE UNIQUE INDEX ix ON t (a, b DESC)"},
		{dialect.Standard, "DROP TABLE IF EXISTS t"},
		{dialect.Standard, "ALTER TABLE t ADD COLUMN c INT"},
		{dialect.Standard, "SELECT CASE WHEN a > 1 THEN 'big' ELSE 'small' END FROM t"},
		{dialect.Standard, "SELECT COUNT(*), COUNT(DISTINCT a), MAX(a) FROM t GROUP BY b HAVING COUNT(*) > 1"},
		{dialect.Standard, "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) FROM t"},
		{dialect.Standard, "SELECT CAST(a AS DECIMAL(10, 2)), EXTRACT(YEAR FROM d) FROM t"},
		{dialect.Standard, "SELECT * FROM t WHERE b LIKE 'x%' OR NOT EXISTS (SELECT 1 FROM u)"},
		{dialect.Standard, "SELECT a FROM t UNION ALL SELECT b FROM u ORDER BY 1"},
		{dialect.Standard, "SELECT a FROM t ORDER BY a OFFSET 5 ROWS FETCH NEXT 10 ROWS ONLY"},
		{dialect.Standard, "SELECT 1; SELECT 2;"},
		{dialect.Standard, "-- only a comment"},
		{dialect.Standard, "SELECT /* inline */ 1 -- trailing"},
		{dialect.Standard, "SELECT \"quoted \"\"name\"\"\" FROM t"},
		{dialect.Oracle, "SELECT a FROM t MINUS SELECT a FROM u"},
		{dialect.SQLite, "SELECT [name], `x` FROM \"t\" WHERE a = ?1"},
		{dialect.SQLite, "CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY AUTOINCREMENT, v TEXT)"},
		{dialect.BigQuery, "SELECT * FROM `proj.ds.t` WHERE s = \"x\" AND r = r'\\d' # comment"},
		{dialect.BigQuery, "SELECT a FROM t QUALIFY ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) = 1"},
		{dialect.BigQuery, "SELECT '''multi\nline'''"},
		{dialect.Snowflake, "SELECT $$it's$$, 'a\\'b' // comment"},
		{dialect.SQLServer, "SELECT TOP 5 name FROM [dbo].[users] WHERE id = @id\nGO\nSELECT N'x'"},
		{dialect.SQLServer, "DECLARE @x INT = 1\nSET @x = 2\nPRINT @x"},
		{dialect.SQLServer, "SET NOCOUNT ON\nEXEC dbo.refresh @force = 1"},
		{dialect.SQLServer, "SELECT #tmp.a FROM #tmp /* outer /* nested */ still comment */"},
		{dialect.Standard, "SELECT NOW()"},
		{dialect.Standard, "SELECT COALESCE(a, NOW()) FROM t"},
		{dialect.SQLServer, "SELECT DATEADD(day, -30, GETDATE())"},
		{dialect.BigQuery, "SELECT CURRENT_TIMESTAMP()"},
		{dialect.Oracle, "SELECT ROW_NUMBER() OVER (ORDER BY a) FROM t"},
		{dialect.SQLite, "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t"},
		{dialect.Snowflake, "SELECT RANK() OVER (PARTITION BY a ORDER BY b) FROM t"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.String()+": "+tt.sql, func(t *testing.T) {
			assert.NoError(t, For(tt.dialect).Parse(tt.sql))
		})
	}
}

func TestGeneric_Examples(t *testing.T) {
	for _, info := range dialect.All() {
		if info.Grammar != dialect.GrammarGeneric {
			continue
		}
		t.Run(info.Name, func(t *testing.T) {
			assert.NoError(t, For(info.Dialect).Parse(info.Dialect.Example()))
		})
	}
}

func TestGeneric_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		dialect dialect.Dialect
		sql     string
		line    int
		col     int
		message string
	}{
		{"misspelled keyword", dialect.Standard, "SELECT u.id FROM users u WHER u.active = true", 1, 26, "WHER"},
		{"first token", dialect.Standard, "SELEC 1", 1, 1, "SELEC"},
		{"missing table", dialect.Standard, "SELECT * FROM", 1, 14, "unexpected end of input"},
		{"open paren", dialect.Standard, "SELECT (1 + 2", 1, 14, "unexpected end of input"},
		{"trailing comment at end", dialect.Standard, "SELECT a FROM -- nothing", 1, 25, "unexpected end of input"},
		{"second line", dialect.Standard, "SELECT a\nFROM t\nWHERE a = = 1", 3, 11, "="},
		{"after multibyte", dialect.Standard, "SELECT 'ø' FROM FROM", 1, 17, "FROM"},
		{"second batch", dialect.SQLServer, "SELECT 1\nGO\nSELECT FROM t", 3, 8, "FROM"},
		{"unterminated string", dialect.Standard, "SELECT 'abc", 1, 8, "unterminated string literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := For(tt.dialect).Parse(tt.sql)
			require.Error(t, err)
			var serr *SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.line, serr.Pos.Line)
			assert.Equal(t, tt.col, serr.Pos.Col)
			assert.Contains(t, serr.Message, tt.message)
		})
	}
}

func TestMaskComments(t *testing.T) {
	masked, fault := maskComments(dialect.Standard, "SELECT /* ø */ 1 -- x\n, '--'")
	require.Nil(t, fault)
	assert.Equal(t, "SELECT          1     \n, '--'", masked)
}

func TestSyntaxError_Error(t *testing.T) {
	err := For(dialect.Standard).Parse("SELECT 1 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at line 1, column 10")
}
