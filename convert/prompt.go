package convert

import (
	"fmt"

	"github.com/vippsas/sqltext/dialect"
)

const (
	// StartMarker and EndMarker frame the converted SQL in a completion.
	StartMarker = "<<<SQL>>>"
	EndMarker   = "<<<END_SQL>>>"
)

const fallbackRules = "Convert syntax appropriately for the target database."

var promptNames = map[dialect.Dialect]string{
	dialect.MySQL:      "MySQL",
	dialect.PostgreSQL: "PostgreSQL",
	dialect.SQLServer:  "SQL Server (T-SQL)",
	dialect.SQLite:     "SQLite",
	dialect.MariaDB:    "MariaDB",
}

type pair struct{ from, to dialect.Dialect }

var rules = map[pair]string{
	{dialect.MySQL, dialect.PostgreSQL}: `
- AUTO_INCREMENT → SERIAL (for INT) or BIGSERIAL (for BIGINT)
- Backticks (` + "`" + `) → Double quotes (") for identifiers
- TINYINT(1) → BOOLEAN
- DATETIME → TIMESTAMP
- INT(n) → INTEGER (remove display width)
- DOUBLE → DOUBLE PRECISION
- BLOB → BYTEA
- TEXT types remain TEXT
- IFNULL() → COALESCE()
- NOW() → CURRENT_TIMESTAMP or NOW()
- LIMIT offset, count → LIMIT count OFFSET offset
- ENGINE=InnoDB, CHARSET, COLLATE → Remove (not supported)
- ENUM → VARCHAR with CHECK constraint or custom TYPE
- UNSIGNED → Add CHECK constraint (col >= 0)
- ON UPDATE CURRENT_TIMESTAMP → Use trigger instead`,

	{dialect.MySQL, dialect.SQLServer}: `
- AUTO_INCREMENT → IDENTITY(1,1)
- Backticks (` + "`" + `) → Square brackets ([]) for identifiers
- TINYINT(1) → BIT
- DATETIME → DATETIME or DATETIME2
- TEXT → VARCHAR(MAX)
- LONGTEXT → VARCHAR(MAX)
- DOUBLE → FLOAT
- BLOB → VARBINARY(MAX)
- NOW() → GETDATE()
- IFNULL() → ISNULL()
- LIMIT n → TOP n (simple cases) or OFFSET/FETCH
- LIMIT offset, n → OFFSET offset ROWS FETCH NEXT n ROWS ONLY
- ENGINE, CHARSET, COLLATE → Remove
- ENUM → VARCHAR with CHECK constraint
- UNSIGNED → CHECK constraint`,

	{dialect.MySQL, dialect.SQLite}: `
- AUTO_INCREMENT → INTEGER PRIMARY KEY (AUTOINCREMENT optional)
- Backticks (` + "`" + `) → Double quotes (") or remove
- All INT types → INTEGER
- VARCHAR(n), TEXT → TEXT
- DATETIME → TEXT (stored as ISO8601)
- DECIMAL → REAL
- BLOB → BLOB
- NOW() → datetime('now')
- ENGINE, CHARSET, COLLATE → Remove
- ENUM → TEXT with CHECK constraint
- Named indexes stay the same`,

	{dialect.PostgreSQL, dialect.MySQL}: `
- SERIAL → INT AUTO_INCREMENT
- BIGSERIAL → BIGINT AUTO_INCREMENT
- Double quotes (") → Backticks (` + "`" + `) for identifiers
- BOOLEAN → TINYINT(1)
- TIMESTAMP → DATETIME
- DOUBLE PRECISION → DOUBLE
- BYTEA → BLOB
- TEXT → TEXT or LONGTEXT
- COALESCE() → IFNULL() (for 2 args)
- CURRENT_TIMESTAMP → NOW()
- :: type cast → CAST(x AS type)
- LIMIT count OFFSET offset → LIMIT offset, count
- ARRAY types → JSON or redesign
- JSONB → JSON
- Custom types → VARCHAR or ENUM
- CREATE INDEX CONCURRENTLY → CREATE INDEX`,

	{dialect.PostgreSQL, dialect.SQLServer}: `
- SERIAL → INT IDENTITY(1,1)
- BIGSERIAL → BIGINT IDENTITY(1,1)
- Double quotes (") → Square brackets ([])
- BOOLEAN → BIT
- TEXT → VARCHAR(MAX)
- TIMESTAMP → DATETIME2
- BYTEA → VARBINARY(MAX)
- COALESCE() stays COALESCE()
- CURRENT_TIMESTAMP → GETDATE() or CURRENT_TIMESTAMP
- LIMIT n → TOP n or OFFSET/FETCH
- :: type cast → CAST(x AS type)
- Arrays → JSON or redesign
- JSONB → NVARCHAR(MAX) with JSON functions`,

	{dialect.PostgreSQL, dialect.SQLite}: `
- SERIAL → INTEGER PRIMARY KEY
- BIGSERIAL → INTEGER PRIMARY KEY
- Double quotes remain or remove
- BOOLEAN → INTEGER (0/1)
- TIMESTAMP → TEXT
- All numeric types → INTEGER or REAL
- VARCHAR → TEXT
- BYTEA → BLOB
- CURRENT_TIMESTAMP → datetime('now')
- Schema prefixes (public.) → Remove
- Arrays → JSON text
- Custom types → TEXT`,

	{dialect.SQLServer, dialect.MySQL}: `
- IDENTITY(1,1) → AUTO_INCREMENT
- Square brackets ([]) → Backticks (` + "`" + `)
- BIT → TINYINT(1)
- DATETIME2 → DATETIME
- VARCHAR(MAX) → LONGTEXT
- NVARCHAR → VARCHAR (MySQL is UTF8)
- VARBINARY(MAX) → LONGBLOB
- GETDATE() → NOW()
- ISNULL() → IFNULL()
- TOP n → LIMIT n
- OFFSET/FETCH → LIMIT offset, count
- [dbo]. schema prefix → Remove
- UNIQUEIDENTIFIER → CHAR(36)`,

	{dialect.SQLServer, dialect.PostgreSQL}: `
- IDENTITY(1,1) → SERIAL or GENERATED AS IDENTITY
- Square brackets ([]) → Double quotes (")
- BIT → BOOLEAN
- DATETIME2 → TIMESTAMP
- VARCHAR(MAX) → TEXT
- NVARCHAR → VARCHAR
- VARBINARY(MAX) → BYTEA
- GETDATE() → CURRENT_TIMESTAMP
- ISNULL() → COALESCE()
- TOP n → LIMIT n
- OFFSET/FETCH → LIMIT/OFFSET
- [dbo]. schema prefix → public. or remove
- UNIQUEIDENTIFIER → UUID`,

	{dialect.SQLite, dialect.MySQL}: `
- INTEGER PRIMARY KEY → INT AUTO_INCREMENT PRIMARY KEY
- AUTOINCREMENT → AUTO_INCREMENT
- TEXT → VARCHAR(255) or TEXT
- REAL → DOUBLE
- BLOB → BLOB
- datetime('now') → NOW()
- No type → appropriate MySQL type
- Flexible typing → Strict typing`,

	{dialect.SQLite, dialect.PostgreSQL}: `
- INTEGER PRIMARY KEY → SERIAL PRIMARY KEY
- AUTOINCREMENT → SERIAL
- TEXT → VARCHAR or TEXT
- REAL → DOUBLE PRECISION
- BLOB → BYTEA
- datetime('now') → CURRENT_TIMESTAMP
- Flexible typing → Strict typing`,
}

// Rules returns the conversion rule list given to the model for the pair.
func Rules(from, to dialect.Dialect) string {
	if r, ok := rules[pair{from, to}]; ok {
		return r
	}
	return fallbackRules
}

// PromptName is how d is named to the model.
func PromptName(d dialect.Dialect) string {
	if name, ok := promptNames[d]; ok {
		return name
	}
	return d.Label()
}

// SystemPrompt instructs the model to answer with the SQL between
// StartMarker and EndMarker followed by a summary of the changes.
func SystemPrompt(from, to dialect.Dialect) string {
	source, target := PromptName(from), PromptName(to)
	return fmt.Sprintf(`You are an expert SQL developer specializing in database migrations. Your task is to convert SQL from %[1]s to %[2]s.

IMPORTANT: You MUST follow this exact format:
1. Output the converted SQL between %[3]s and %[4]s markers
2. Then output a brief summary of the key changes made

Format your response EXACTLY like this:
%[3]s
[The converted SQL code here]
%[4]s

## Conversion Summary
[Brief bullet points of key changes made, e.g.:]
- Changed AUTO_INCREMENT to SERIAL
- Converted backticks to double quotes
- Mapped TINYINT(1) to BOOLEAN

Conversion Rules for %[1]s to %[2]s:

%[5]s

Additional Guidelines:
- Preserve all table and column names exactly
- Maintain the same constraints (PRIMARY KEY, FOREIGN KEY, UNIQUE, NOT NULL)
- Convert data types appropriately for the target database
- Handle identifier quoting correctly for the target dialect
- Keep comments if present
- Format the output SQL cleanly with proper indentation
- If something cannot be directly converted, add a SQL comment explaining the issue`,
		source, target, StartMarker, EndMarker, Rules(from, to))
}

// UserPrompt carries the SQL to convert.
func UserPrompt(from, to dialect.Dialect, sql string) string {
	return fmt.Sprintf("Convert this %s SQL to %s:\n\n```sql\n%s\n```\n\nProvide the converted SQL and a summary of the changes made.",
		PromptName(from), PromptName(to), sql)
}
