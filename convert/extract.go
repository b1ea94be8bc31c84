package convert

import "strings"

type extractState int

const (
	awaitingStart extractState = iota
	inSQL
	inSummary
)

// Result is the state of a conversion. While the completion streams in,
// each Result only extends the previous one.
type Result struct {
	SQL     string `json:"sql"`
	Summary string `json:"summary"`
	// Framed is set once StartMarker has been seen, Done once EndMarker
	// has.
	Framed   bool `json:"framed"`
	Done     bool `json:"done"`
	Canceled bool `json:"canceled,omitempty"`
}

// Extractor splits a streamed completion into the SQL between the markers
// and the summary after them. It is not safe for concurrent use.
type Extractor struct {
	buf      strings.Builder
	state    extractState
	sqlStart int // offset of the SQL in buf
	sqlStop  int // offset of EndMarker in buf
}

// Feed appends chunk to the completion and returns the result so far. Text
// that may turn out to be the start of EndMarker is held back until the
// next chunk settles it.
func (e *Extractor) Feed(chunk string) Result {
	e.buf.WriteString(chunk)
	text := e.buf.String()

	if e.state == awaitingStart {
		i := strings.Index(text, StartMarker)
		if i == -1 {
			return Result{}
		}
		e.state = inSQL
		e.sqlStart = i + len(StartMarker)
	}
	if e.state == inSQL {
		i := strings.Index(text[e.sqlStart:], EndMarker)
		if i == -1 {
			body := holdBack(text[e.sqlStart:], EndMarker)
			return Result{SQL: strings.TrimSpace(body), Framed: true}
		}
		e.state = inSummary
		e.sqlStop = e.sqlStart + i
	}
	return e.done(text)
}

// Finish returns the final result once the completion has ended. Without
// markers the whole completion becomes the summary; without an end marker
// everything after the start marker is SQL.
func (e *Extractor) Finish() Result {
	text := e.buf.String()
	switch e.state {
	case awaitingStart:
		return Result{Summary: strings.TrimSpace(text)}
	case inSQL:
		return Result{SQL: strings.TrimSpace(text[e.sqlStart:]), Framed: true}
	}
	return e.done(text)
}

// Text is the completion received so far.
func (e *Extractor) Text() string {
	return e.buf.String()
}

func (e *Extractor) done(text string) Result {
	return Result{
		SQL:     strings.TrimSpace(text[e.sqlStart:e.sqlStop]),
		Summary: strings.TrimSpace(text[e.sqlStop+len(EndMarker):]),
		Framed:  true,
		Done:    true,
	}
}

// holdBack drops the longest proper prefix of marker that s ends with.
func holdBack(s, marker string) string {
	n := len(marker) - 1
	if n > len(s) {
		n = len(s)
	}
	for ; n > 0; n-- {
		if strings.HasSuffix(s, marker[:n]) {
			return s[:len(s)-n]
		}
	}
	return s
}
