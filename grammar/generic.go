package grammar

import (
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/sqlparser"
	"github.com/vippsas/sqltext/sqlparser/mssql"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// keywords are lexed as Keyword tokens and so can never be captured as
// identifiers. Words the grammar only needs in a fixed position (TOP, ROWS,
// INDEX, ...) stay identifiers.
var keywords = []string{
	"SELECT", "FROM", "WHERE", "GROUP", "BY", "HAVING", "ORDER", "LIMIT", "OFFSET", "FETCH",
	"UNION", "INTERSECT", "EXCEPT", "MINUS", "ALL", "DISTINCT", "AS", "ON", "JOIN", "INNER",
	"LEFT", "RIGHT", "FULL", "OUTER", "CROSS", "NATURAL", "USING", "AND", "OR", "NOT", "IN",
	"IS", "NULL", "LIKE", "ILIKE", "BETWEEN", "EXISTS", "CASE", "WHEN", "THEN", "ELSE", "END",
	"CAST", "INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE", "CREATE", "TABLE", "DROP",
	"ALTER", "PRIMARY", "FOREIGN", "REFERENCES", "UNIQUE", "CHECK", "CONSTRAINT", "DEFAULT",
	"WITH", "TRUE", "FALSE", "ASC", "DESC", "INTERVAL", "RETURNING", "QUALIFY", "WINDOW",
}

// flavor is the lexical variant of the generic grammar for one group of
// dialects. The patterns are regular expressions for the participle lexer.
type flavor struct {
	name         string
	strings      string
	quotedIdents string
	params       string
	ident        string
	batches      bool // split at GO and parse every batch with the Batch root
}

var (
	ansiFlavor = flavor{
		name:         "ansi",
		strings:      `'(?:[^']|'')*'`,
		quotedIdents: `"(?:[^"]|"")*"`,
		params:       `\?|[:@$][\p{L}\p{N}_]+`,
		ident:        `[\p{L}_][\p{L}\p{N}_$]*`,
	}

	snowflakeFlavor = flavor{
		name:         "snowflake",
		strings:      `'(?:[^'\\]|''|\\.)*'|\$\$(?s:.*?)\$\$`,
		quotedIdents: `"(?:[^"]|"")*"`,
		params:       `\?|[:@$][\p{L}\p{N}_]+`,
		ident:        `[\p{L}_][\p{L}\p{N}_$]*`,
	}

	sqliteFlavor = flavor{
		name:         "sqlite",
		strings:      `'(?:[^']|'')*'`,
		quotedIdents: "\"(?:[^\"]|\"\")*\"|`(?:[^`]|``)*`|\\[[^\\]]*\\]",
		params:       `\?\d*|[:@$][\p{L}\p{N}_]+`,
		ident:        `[\p{L}_][\p{L}\p{N}_$]*`,
	}

	bigQueryFlavor = flavor{
		name:         "bigquery",
		strings:      `(?i:[rb]{0,2})(?:'''(?s:.*?)'''|"""(?s:.*?)"""|'(?:[^'\\\n]|\\.)*'|"(?:[^"\\\n]|\\.)*")`,
		quotedIdents: "`(?:[^`\\\\]|\\\\.)*`",
		params:       `\?|@[\p{L}\p{N}_]+`,
		ident:        `[\p{L}_][\p{L}\p{N}_]*`,
	}

	tsqlFlavor = flavor{
		name:         "tsql",
		strings:      `[Nn]?'(?:[^']|'')*'`,
		quotedIdents: `"(?:[^"]|"")*"|\[(?:[^\]]|\]\])*\]`,
		params:       `\?|@@?[\p{L}\p{N}_#$@]+`,
		ident:        `[\p{L}_#][\p{L}\p{N}_#$@]*`,
		batches:      true,
	}
)

var flavors = map[dialect.Dialect]flavor{
	dialect.Standard:  ansiFlavor,
	dialect.Oracle:    ansiFlavor,
	dialect.Snowflake: snowflakeFlavor,
	dialect.SQLite:    sqliteFlavor,
	dialect.BigQuery:  bigQueryFlavor,
	dialect.SQLServer: tsqlFlavor,
}

func (f flavor) lexer() *lexer.StatefulDefinition {
	return lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[\s\p{Z}]+`},
		{Name: "String", Pattern: f.strings},
		{Name: "QuotedIdent", Pattern: f.quotedIdents},
		{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`},
		{Name: "Param", Pattern: f.params},
		{Name: "Keyword", Pattern: `(?i)(?:` + strings.Join(keywords, "|") + `)\b`},
		{Name: "Ident", Pattern: f.ident},
		{Name: "Operator", Pattern: `<>|!=|<=|>=|\|\||::|[-+*/%<>=~&|^!]`},
		{Name: "Punct", Pattern: `[(),.;\[\]{}]`},
	})
}

func build[G any](def lexer.Definition) *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(def),
		participle.Elide("Whitespace"),
		participle.CaseInsensitive("Keyword", "Ident"),
		participle.UseLookahead(8),
	)
}

// Generic checks syntax with the built-in grammar. Comments are blanked out
// with the lexical rules of the dialect before parsing, so the grammar lexer
// only deals with code and literals.
type Generic struct {
	dialect dialect.Dialect
	script  *participle.Parser[Script]
	batch   *participle.Parser[Batch]
}

// NewGeneric builds the generic grammar for d. Dialects without a flavor of
// their own get the ANSI one.
func NewGeneric(d dialect.Dialect) *Generic {
	f, ok := flavors[d]
	if !ok {
		f = ansiFlavor
	}
	g := &Generic{dialect: d}
	if f.batches {
		g.batch = build[Batch](f.lexer())
	} else {
		g.script = build[Script](f.lexer())
	}
	return g
}

func (g *Generic) Parse(sql string) error {
	masked, fault := maskComments(g.dialect, sql)
	if fault != nil {
		return &SyntaxError{Message: fault.Error(), Pos: fault.Pos}
	}
	if g.batch == nil {
		_, err := g.script.ParseString("", masked)
		return convertError(sql, masked, 0, err)
	}
	batches, offsets := mssql.Batches(masked)
	for i, batch := range batches {
		if _, err := g.batch.ParseString("", batch); err != nil {
			return convertError(sql, batch, offsets[i], err)
		}
	}
	return nil
}

// maskComments replaces every comment byte except newlines with a space, so
// byte offsets into the result are byte offsets into sql.
func maskComments(d dialect.Dialect, sql string) (string, *sqldocument.LexicalFault) {
	spans := sqlparser.Classify(d, sql)
	if fault := spans.Fault(); fault != nil {
		return "", fault
	}
	var b strings.Builder
	b.Grow(len(sql))
	for _, span := range spans {
		if span.Class != sqldocument.LineCommentSpan && span.Class != sqldocument.BlockCommentSpan {
			b.WriteString(span.Text)
			continue
		}
		for i := 0; i < len(span.Text); i++ {
			if span.Text[i] == '\n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
	}
	return b.String(), nil
}

// convertError turns a participle error for text, which starts at byte base
// of sql, into a SyntaxError positioned in sql.
func convertError(sql, text string, base int, err error) error {
	if err == nil {
		return nil
	}
	var perr participle.Error
	if !errors.As(err, &perr) {
		return errors.Wrap(err, "generic grammar")
	}
	offset := perr.Position().Offset
	if offset > len(text) {
		offset = len(text)
	}
	message := perr.Message()
	if strings.TrimFunc(text[offset:], unicode.IsSpace) == "" {
		message = "unexpected end of input"
	}
	return &SyntaxError{Message: message, Pos: sqldocument.PosAt(sql, base+offset)}
}
