// Package sqltest runs tests against the SQL Server named by the
// SQLSERVER_DSN environment variable. Tests using it are skipped when the
// variable is not set.
package sqltest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"
)

type StdoutLogger struct {
}

func (s StdoutLogger) Printf(format string, v ...interface{}) {
	fmt.Printf(format, v...)
}

func (s StdoutLogger) Println(v ...interface{}) {
	fmt.Println(v...)
}

var _ mssql.Logger = StdoutLogger{}

// Fixture is a scratch database, dropped again by Teardown.
type Fixture struct {
	DB      *sql.DB
	DSN     string
	DBName  string
	adminDB *sql.DB
}

func NewFixture(t testing.TB) *Fixture {
	dsn := os.Getenv("SQLSERVER_DSN")
	if dsn == "" {
		t.Skip("set SQLSERVER_DSN to run tests against SQL Server")
	}
	if os.Getenv("SQLSERVER_LOG") != "" {
		dsn = dsn + "&log=3"
		mssql.SetLogger(StdoutLogger{})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	var fixture Fixture
	var err error
	fixture.adminDB, err = sql.Open("sqlserver", dsn)
	if err != nil {
		t.Fatal(err)
	}
	fixture.DBName = strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")
	if _, err = fixture.adminDB.ExecContext(ctx, fmt.Sprintf(`create database [%s]`, fixture.DBName)); err != nil {
		t.Fatal(err)
	}

	pdsn, err := msdsn.Parse(dsn)
	if err != nil {
		t.Fatal(err)
	}
	pdsn.Database = fixture.DBName
	fixture.DSN = pdsn.URL().String()

	fixture.DB, err = sql.Open("sqlserver", fixture.DSN)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(fixture.Teardown)
	return &fixture
}

func (f *Fixture) Teardown() {
	if f.adminDB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	_ = f.DB.Close()
	f.DB = nil
	_, _ = f.adminDB.ExecContext(ctx, fmt.Sprintf(`drop database [%s]`, f.DBName))
	_ = f.adminDB.Close()
	f.adminDB = nil
}
