// Package validate checks the syntax of a SQL script and turns whatever the
// dialect's parser reports into a Diagnostic with a readable message and,
// when it can be recovered, a line and column.
package validate

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/grammar"
	"github.com/vippsas/sqltext/sqlparser"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// DefaultPreviewLength is the number of characters of an unterminated
// literal quoted in its diagnostic.
const DefaultPreviewLength = 50

const emptyMessage = "Please enter some SQL to validate"

// Location is a 1-indexed line and column; columns count characters.
type Location struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Diagnostic is a syntax error report. Location is nil when no position
// could be recovered.
type Diagnostic struct {
	Message  string    `json:"message" yaml:"message"`
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Location == nil {
		return d.Message
	}
	return fmt.Sprintf("Error at line %d, column %d. Details: %s", d.Location.Line, d.Location.Column, d.Message)
}

// Result of validating one script. Error is set exactly when IsValid is
// false.
type Result struct {
	IsValid bool        `json:"isValid" yaml:"isValid"`
	Error   *Diagnostic `json:"error,omitempty" yaml:"error,omitempty"`
}

// Validator is safe for concurrent use. The zero value is ready to use.
type Validator struct {
	Logger        logrus.FieldLogger
	PreviewLength int // zero means DefaultPreviewLength
	// Grammars looks up the grammar of a dialect; nil means grammar.For.
	Grammars func(dialect.Dialect) grammar.Grammar
}

// Validate checks sql with the default Validator.
func Validate(sql string, d dialect.Dialect) Result {
	var v Validator
	return v.Validate(sql, d)
}

// Validate checks sql against the grammar of d. Only an invalid d makes it
// panic; every problem with sql is reported in the Result.
func (v *Validator) Validate(sql string, d dialect.Dialect) Result {
	if strings.TrimSpace(sql) == "" {
		return invalid(Diagnostic{Message: emptyMessage})
	}
	log := v.logger().WithField("dialect", d.String())

	if fault := sqlparser.Classify(d, sql).Fault(); fault != nil {
		log.WithField("pos", fault.Pos.String()).Debug("lexical fault")
		return invalid(v.lexicalDiagnostic(fault))
	}

	err := v.parse(d, sql)
	if err == nil {
		return Result{IsValid: true}
	}
	if errors.Is(err, errParserPanic) {
		return invalid(Diagnostic{Message: genericMessage})
	}

	attempt := newAttempt(sql, err)
	loc, strategy := Locate(attempt)
	log.WithError(err).WithField("strategy", strategy).Debug("syntax error")
	return invalid(Diagnostic{
		Message:  Humanize(attempt.Message, loc, sql),
		Location: loc,
	})
}

// errParserPanic is returned by parse when the parser library panicked.
// The panic value is only logged.
var errParserPanic = errors.New("parser failure")

// parse runs the grammar, turning a panic inside the parser library into
// errParserPanic.
func (v *Validator) parse(d dialect.Dialect, sql string) (err error) {
	g := v.grammar(d)
	defer func() {
		if r := recover(); r != nil {
			v.logger().WithField("dialect", d.String()).Errorf("parser panic: %v", r)
			err = errParserPanic
		}
	}()
	return g.Parse(sql)
}

func (v *Validator) lexicalDiagnostic(fault *sqldocument.LexicalFault) Diagnostic {
	var what string
	switch fault.Class {
	case sqldocument.QuotedIdentifierSpan:
		what = "quoted identifier"
	case sqldocument.BlockCommentSpan:
		what = "block comment"
	default:
		what = "quoted string"
	}
	return Diagnostic{
		Message:  fmt.Sprintf("Unterminated %s at or near '%s'", what, v.preview(fault.Text)),
		Location: &Location{Line: fault.Pos.Line, Column: fault.Pos.Col},
	}
}

func (v *Validator) preview(text string) string {
	n := v.PreviewLength
	if n <= 0 {
		n = DefaultPreviewLength
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

func (v *Validator) grammar(d dialect.Dialect) grammar.Grammar {
	if v.Grammars != nil {
		return v.Grammars(d)
	}
	return grammar.For(d)
}

func (v *Validator) logger() logrus.FieldLogger {
	if v.Logger == nil {
		return logrus.StandardLogger()
	}
	return v.Logger
}

func invalid(d Diagnostic) Result {
	return Result{Error: &d}
}
