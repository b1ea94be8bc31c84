package grammar

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dolthub/vitess/go/vt/sqlparser"
	"github.com/pkg/errors"
)

// Vitess checks MySQL and MariaDB scripts with the vitess parser, one
// statement at a time.
//
// Vitess reports the byte position just past the offending token, counted
// from the start of the statement. Errors are returned as plain messages
// with that position rewritten to the character offset of the token start
// in the whole script.
type Vitess struct{}

var vitessPosition = regexp.MustCompile(`at position (\d+)(?: near '(.*)')?`)

func (Vitess) Parse(sql string) error {
	pieces, err := sqlparser.SplitStatementToPieces(sql)
	if err != nil {
		return errors.New(err.Error())
	}
	cursor := 0
	for _, piece := range pieces {
		base := cursor
		if i := strings.Index(sql[cursor:], piece); i >= 0 {
			base = cursor + i
			cursor = base + len(piece)
		}
		if strings.TrimSpace(piece) == "" {
			continue
		}
		if _, err := sqlparser.Parse(piece); err != nil {
			if errors.Is(err, sqlparser.ErrEmpty) {
				continue
			}
			return errors.New(relocate(err.Error(), sql, base))
		}
	}
	return nil
}

// relocate rewrites the position in a vitess message for a statement
// starting at byte base of sql.
func relocate(message, sql string, base int) string {
	m := vitessPosition.FindStringSubmatchIndex(message)
	if m == nil {
		return message
	}
	pos, err := strconv.Atoi(message[m[2]:m[3]])
	if err != nil {
		return message
	}
	near := ""
	if m[4] >= 0 {
		near = message[m[4]:m[5]]
	}
	start := base + pos - 1 - len(near)
	if start < base {
		start = base
	}
	if start > len(sql) {
		start = len(sql)
	}
	for start > 0 && start < len(sql) && !utf8.RuneStart(sql[start]) {
		start--
	}
	chars := utf8.RuneCountInString(sql[:start])
	return message[:m[2]] + strconv.Itoa(chars) + message[m[3]:]
}
