package grammar

import (
	pg_query "github.com/pganalyze/pg_query_go/v6"
	"github.com/pganalyze/pg_query_go/v6/parser"
	"github.com/pkg/errors"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// PgQuery checks PostgreSQL and Redshift scripts with the PostgreSQL
// server parser. The cursor position of its errors counts characters from
// 1 and becomes the position of a SyntaxError.
type PgQuery struct{}

func (PgQuery) Parse(sql string) error {
	_, err := pg_query.Parse(sql)
	if err == nil {
		return nil
	}
	var perr *parser.Error
	if errors.As(err, &perr) && perr.Cursorpos > 0 {
		offset := sqldocument.RuneOffset(sql, perr.Cursorpos-1)
		return &SyntaxError{Message: perr.Message, Pos: sqldocument.PosAt(sql, offset)}
	}
	return err
}
