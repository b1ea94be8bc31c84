package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/azuread"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/sqltext/convert"
	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/grammar"
	"github.com/vippsas/sqltext/minify"
	"golang.org/x/net/proxy"
	"gopkg.in/yaml.v3"
)

const configFilename = "sqltext.yaml"

type ValidateConfig struct {
	PreviewLength int `yaml:"preview_length"`
}

type GrammarConfig struct {
	// SQLServerDSN points at a server used to check T-SQL with
	// SET PARSEONLY ON; sqlserver:// for password login or azuresql://
	// for AD login.
	SQLServerDSN string        `yaml:"sqlserver_dsn"`
	Timeout      time.Duration `yaml:"timeout"`
}

type Config struct {
	Dialect  dialect.Dialect      `yaml:"dialect"`
	Minify   minify.Options       `yaml:"minify"`
	Validate ValidateConfig       `yaml:"validate"`
	Convert  convert.OpenAIConfig `yaml:"convert"`
	Grammar  GrammarConfig        `yaml:"grammar"`
}

func OpenSocks5Sql(dsn string) (*sql.DB, error) {
	var err error
	var connector *mssql.Connector

	switch {
	case strings.HasPrefix(dsn, "azuresql://"):
		connector, err = azuread.NewConnector(dsn)
	case strings.HasPrefix(dsn, "sqlserver://"):
		connector, err = mssql.NewConnector(dsn)
	default:
		return nil, errors.New("expected URI-style dsn; sqlserver:// for password login or azuresql:// for AD login")
	}
	if err != nil {
		return nil, err
	}

	if socksProxyAddress := os.Getenv("SQL_SOCKS"); socksProxyAddress != "" {
		dialer, err := proxy.SOCKS5("tcp", socksProxyAddress, nil, nil)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("Could not connect with SOCKS5 to %s", socksProxyAddress))
		}
		connector.Dialer = dialer.(proxy.ContextDialer)
	}

	return sql.OpenDB(connector), nil
}

// ConfigureGrammars installs the remote T-SQL grammar when a server is
// configured. The returned function undoes it.
func (cfg Config) ConfigureGrammars(logger logrus.FieldLogger) (func() error, error) {
	return grammar.Configure(grammar.Options{
		SQLServerDSN: cfg.Grammar.SQLServerDSN,
		Open:         OpenSocks5Sql,
		Timeout:      cfg.Grammar.Timeout,
		Logger:       logger,
	})
}

// LoadConfig reads sqltext.yaml and .env from the directory flag. Both are
// optional; without them the defaults apply. The dialect flag overrides the
// configured dialect.
func LoadConfig() (Config, error) {
	result := Config{
		Dialect: dialect.Standard,
		Minify:  minify.DefaultOptions,
		Convert: convert.OpenAIConfig{
			Model:     convert.DefaultModel,
			MaxTokens: convert.DefaultMaxTokens,
		},
	}

	envFilename := filepath.Join(directory, ".env")
	if _, err := os.Stat(envFilename); err == nil {
		if err := godotenv.Load(envFilename); err != nil {
			return Config{}, errors.Wrapf(err, "load %s", envFilename)
		}
	}

	yamlFilename := filepath.Join(directory, configFilename)
	yamlFile, err := os.ReadFile(yamlFilename)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return Config{}, errors.Wrapf(err, "read %s", yamlFilename)
	default:
		if err := yaml.Unmarshal(yamlFile, &result); err != nil {
			return Config{}, errors.Wrapf(err, "parse %s", yamlFilename)
		}
	}

	if dialectName != "" {
		d, err := dialect.Parse(dialectName)
		if err != nil {
			return Config{}, err
		}
		result.Dialect = d
	}
	result.Minify.Dialect = result.Dialect
	result.Convert.APIKey = os.Getenv("OPENAI_API_KEY")
	result.Convert.SocksProxy = os.Getenv("SQL_SOCKS")
	return result, nil
}
