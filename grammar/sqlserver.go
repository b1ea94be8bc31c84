package grammar

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tsql "github.com/vippsas/sqltext/sqlparser/mssql"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// DefaultTimeout bounds one remote parse check.
const DefaultTimeout = 10 * time.Second

// DB is the part of *sql.DB the server check needs.
type DB interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

var _ DB = &sql.DB{}

// Server checks T-SQL by sending every batch to SQL Server with
// SET PARSEONLY ON, so nothing is compiled or executed. When the server
// cannot be reached the Fallback grammar is used.
type Server struct {
	DB       DB
	Fallback Grammar
	Timeout  time.Duration
	Logger   logrus.FieldLogger
}

// ServerError is the syntax error SQL Server reported for one batch.
type ServerError struct {
	Wrapped mssql.Error
	// BatchStart is the position of the first character of the batch.
	BatchStart sqldocument.Pos
}

// Error is the message of the first error only; it names the offending
// token ("Incorrect syntax near 'FROM'.").
func (e ServerError) Error() string {
	if len(e.Wrapped.All) > 0 {
		return e.Wrapped.All[0].Message
	}
	return e.Wrapped.Message
}

// Detail lists every error with its line in the input.
func (e ServerError) Detail() string {
	var buf bytes.Buffer
	all := e.Wrapped.All
	if len(all) == 0 {
		all = []mssql.Error{e.Wrapped}
	}
	for _, item := range all {
		line := e.BatchStart.Line + int(item.LineNo) - 1
		if _, fmterr := fmt.Fprintf(&buf, "%d: %s\n", line, item.Message); fmterr != nil {
			panic(fmterr)
		}
	}
	return buf.String()
}

func (s *Server) Parse(input string) error {
	timeout := s.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := s.DB.Conn(ctx)
	if err != nil {
		return s.fallback(input, err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, "set parseonly on"); err != nil {
		return s.fallback(input, err)
	}
	defer func() { _, _ = conn.ExecContext(ctx, "set parseonly off") }()

	batches, offsets := tsql.Batches(input)
	for i, batch := range batches {
		_, err := conn.ExecContext(ctx, batch)
		if err == nil {
			continue
		}
		var sqlErr mssql.Error
		if errors.As(err, &sqlErr) {
			return ServerError{Wrapped: sqlErr, BatchStart: sqldocument.PosAt(input, offsets[i])}
		}
		return s.fallback(input, err)
	}
	return nil
}

func (s *Server) fallback(input string, cause error) error {
	s.logger().WithError(cause).Warn("sql server parse check unavailable, using built-in grammar")
	if s.Fallback == nil {
		return errors.Wrap(cause, "sql server parse check")
	}
	return s.Fallback.Parse(input)
}

func (s *Server) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}
