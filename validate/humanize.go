package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const genericMessage = "Syntax error in query"

var (
	syntaxErrorPrefix = regexp.MustCompile(`(?i)^syntax error:\s*`)
	lineColumnText    = regexp.MustCompile(`(?i)\s*at line \d+,?\s*column \d+`)
	offsetText        = regexp.MustCompile(`(?i)\s*(?:at )?position\s*\d+`)
	endOfInput        = regexp.MustCompile(`(?i)end of (?:input|file)|unexpected EOF`)
	expectedButFound  = regexp.MustCompile(`(?i)expected .+ but ["']?(\w+)["']? found`)
)

// Humanize phrases a parser message for display. loc is the recovered
// position of the error in sql, if any.
func Humanize(message string, loc *Location, sql string) string {
	clean := cleanMessage(message)
	switch {
	case strings.Contains(clean, "at or near"):
		return capitalize(clean)
	case endOfInput.MatchString(clean):
		if token := tokenNear(sql, loc); token != "" {
			return fmt.Sprintf("Unexpected end of input near '%s'", token)
		}
		return "Unexpected end of input"
	}
	if token := tokenNear(sql, loc); token != "" {
		return fmt.Sprintf("Syntax error at or near '%s'", token)
	}
	if m := expectedButFound.FindStringSubmatch(clean); m != nil {
		return fmt.Sprintf("Syntax error at or near '%s'", m[1])
	}
	if clean != "" {
		return capitalize(clean)
	}
	return genericMessage
}

// cleanMessage strips the "Syntax error:" prefix and position text.
func cleanMessage(message string) string {
	message = syntaxErrorPrefix.ReplaceAllString(strings.TrimSpace(message), "")
	message = lineColumnText.ReplaceAllString(message, "")
	message = offsetText.ReplaceAllString(message, "")
	return strings.TrimSpace(message)
}

// tokenNear returns the non-blank run starting at loc. If loc is past the
// end of its line, or at a blank, the last run before it is used. Trailing
// commas, semicolons and closing parentheses are trimmed.
func tokenNear(sql string, loc *Location) string {
	if loc == nil || sql == "" {
		return ""
	}
	lines := strings.Split(sql, "\n")
	if loc.Line < 1 || loc.Line > len(lines) {
		return ""
	}
	line := []rune(strings.TrimRight(lines[loc.Line-1], "\r"))
	col := loc.Column
	if col < 1 {
		col = 1
	}
	if col <= len(line) {
		if token := leadingRun(line[col-1:]); token != "" {
			return trimToken(token)
		}
		line = line[:col-1]
	}
	return trimToken(trailingRun(line))
}

func leadingRun(runes []rune) string {
	end := 0
	for end < len(runes) && !unicode.IsSpace(runes[end]) {
		end++
	}
	return string(runes[:end])
}

func trailingRun(runes []rune) string {
	end := len(runes)
	for end > 0 && unicode.IsSpace(runes[end-1]) {
		end--
	}
	start := end
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	return string(runes[start:end])
}

func trimToken(token string) string {
	if trimmed := strings.TrimRight(token, ",;)"); trimmed != "" {
		return trimmed
	}
	return token
}

func capitalize(s string) string {
	r, w := utf8.DecodeRuneInString(s)
	if w == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[w:]
}
