package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vippsas/sqltext/grammar"
	"github.com/vippsas/sqltext/sqlparser/sqldocument"
)

// Attempt is a failed parse: the script and the error of its grammar.
type Attempt struct {
	SQL string
	Err error
	// Message is the parser's own message, without any position the
	// error carries in structured form.
	Message string
}

func newAttempt(sql string, err error) *Attempt {
	a := &Attempt{SQL: sql, Err: err, Message: err.Error()}
	var serr *grammar.SyntaxError
	if errors.As(err, &serr) {
		a.Message = serr.Message
	}
	return a
}

// Strategy recovers the position of a parse error in one way.
type Strategy struct {
	Name   string
	Locate func(a *Attempt) (Location, bool)
}

// Strategies are tried in order; the first that succeeds wins. Earlier
// entries trust the parser more than later ones.
var Strategies = []Strategy{
	{"structured", StructuredLocation},
	{"line-column", LineColumnInMessage},
	{"offset", OffsetInMessage},
	{"near-token", NearToken},
	{"quoted-token", QuotedToken},
}

// Locate runs Strategies over a. It returns a nil Location and the empty
// name when none of them applies.
func Locate(a *Attempt) (*Location, string) {
	for _, s := range Strategies {
		if loc, ok := s.Locate(a); ok {
			return &loc, s.Name
		}
	}
	return nil, ""
}

var (
	lineColumnPattern = regexp.MustCompile(`(?i)at line (\d+),?\s*column (\d+)`)
	offsetPattern     = regexp.MustCompile(`(?i)position\s*(\d+)`)
	nearPattern       = regexp.MustCompile(`(?i)near\s+["']([^"']+)["']`)
	quotedPattern     = regexp.MustCompile("[\"'`]([^\"'`]+)[\"'`]")
)

// StructuredLocation uses the position of a grammar.SyntaxError.
func StructuredLocation(a *Attempt) (Location, bool) {
	var serr *grammar.SyntaxError
	if !errors.As(a.Err, &serr) || serr.Pos.Line < 1 {
		return Location{}, false
	}
	col := serr.Pos.Col
	if col < 1 {
		col = 1
	}
	return Location{Line: serr.Pos.Line, Column: col}, true
}

// LineColumnInMessage reads "at line N, column M" from the message.
func LineColumnInMessage(a *Attempt) (Location, bool) {
	m := lineColumnPattern.FindStringSubmatch(a.Message)
	if m == nil {
		return Location{}, false
	}
	line, err1 := strconv.Atoi(m[1])
	col, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || line < 1 || col < 1 {
		return Location{}, false
	}
	return Location{Line: line, Column: col}, true
}

// OffsetInMessage reads a character offset ("position N") from the
// message.
func OffsetInMessage(a *Attempt) (Location, bool) {
	m := offsetPattern.FindStringSubmatch(a.Message)
	if m == nil {
		return Location{}, false
	}
	chars, err := strconv.Atoi(m[1])
	if err != nil {
		return Location{}, false
	}
	return locationAt(a.SQL, sqldocument.RuneOffset(a.SQL, chars)), true
}

// NearToken finds the first occurrence of the token quoted after "near".
func NearToken(a *Attempt) (Location, bool) {
	m := nearPattern.FindStringSubmatch(a.Message)
	if m == nil {
		return Location{}, false
	}
	i := strings.Index(a.SQL, m[1])
	if i == -1 {
		return Location{}, false
	}
	return locationAt(a.SQL, i), true
}

// QuotedToken finds the first occurrence of any quoted token of the
// message, ignoring case.
func QuotedToken(a *Attempt) (Location, bool) {
	m := quotedPattern.FindStringSubmatch(a.Message)
	if m == nil {
		return Location{}, false
	}
	i := indexFold(a.SQL, m[1])
	if i == -1 {
		return Location{}, false
	}
	return locationAt(a.SQL, i), true
}

func locationAt(sql string, offset int) Location {
	pos := sqldocument.PosAt(sql, offset)
	return Location{Line: pos.Line, Column: pos.Col}
}

// indexFold is strings.Index under Unicode case folding.
func indexFold(s, substr string) int {
	for i := range s {
		if len(s)-i < len(substr) {
			break
		}
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
