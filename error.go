package sqltext

import (
	"fmt"
	"strings"

	"github.com/vippsas/sqltext/validate"
)

// FileDiagnostic is the syntax error of one file.
type FileDiagnostic struct {
	File string
	validate.Diagnostic
}

func (d FileDiagnostic) String() string {
	if d.Location == nil {
		return fmt.Sprintf("%s: %s", d.File, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Location.Line, d.Location.Column, d.Message)
}

// DiagnosticsError collects the syntax errors of a set of files.
type DiagnosticsError struct {
	Errors []FileDiagnostic
}

func (e DiagnosticsError) Error() string {
	var msg strings.Builder
	msg.WriteString("sqltext syntax error:\n\n")
	for _, d := range e.Errors {
		msg.WriteString(d.String())
		msg.WriteString("\n")
	}
	return msg.String()
}
