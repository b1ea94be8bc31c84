package grammar

import (
	"context"
	"database/sql"
	"testing"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

type unreachableDB struct{}

func (unreachableDB) Conn(context.Context) (*sql.Conn, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestServer_FallsBackWhenUnreachable(t *testing.T) {
	logger, hook := test.NewNullLogger()
	server := &Server{DB: unreachableDB{}, Fallback: For(dialect.SQLServer), Logger: logger}

	assert.NoError(t, server.Parse("SELECT 1\nGO\nSELECT 2"))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	var serr *SyntaxError
	require.ErrorAs(t, server.Parse("SELECT FROM t"), &serr)
	assert.Equal(t, 8, serr.Pos.Col)
}

func TestServer_NoFallback(t *testing.T) {
	logger, _ := test.NewNullLogger()
	server := &Server{DB: unreachableDB{}, Logger: logger}
	err := server.Parse("SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestServerError(t *testing.T) {
	first := mssql.Error{Number: 102, LineNo: 2, Message: "Incorrect syntax near 'FROM'."}
	second := mssql.Error{Number: 156, LineNo: 3, Message: "Incorrect syntax near the keyword 'WHERE'."}
	err := ServerError{
		Wrapped:    mssql.Error{Number: 102, LineNo: 2, Message: first.Message, All: []mssql.Error{first, second}},
		BatchStart: sqldocument.Pos{Line: 4, Col: 1},
	}
	assert.Equal(t, "Incorrect syntax near 'FROM'.", err.Error())
	assert.Equal(t, "5: Incorrect syntax near 'FROM'.\n6: Incorrect syntax near the keyword 'WHERE'.\n", err.Detail())

	single := ServerError{Wrapped: first, BatchStart: sqldocument.Pos{Line: 1, Col: 1}}
	assert.Equal(t, "2: Incorrect syntax near 'FROM'.\n", single.Detail())
}
