// Package convert rewrites SQL from one dialect to another by asking a
// language model, and extracts the converted SQL from its streamed answer
// as it arrives.
package convert

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/sqltext/dialect"
)

// ErrUpstream is returned for every failure of the completion service. The
// caller may retry; Session never does.
var ErrUpstream = errors.New("Failed to convert SQL. Please try again.")

// UserError is a problem with the request itself.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// Request to convert SQL from Source to Target.
type Request struct {
	SQL    string          `json:"sql"`
	Source dialect.Dialect `json:"sourceDialect"`
	Target dialect.Dialect `json:"targetDialect"`
}

// Validate returns a *UserError if the request cannot be sent.
func (r Request) Validate() error {
	if strings.TrimSpace(r.SQL) == "" {
		return &UserError{Message: "Please enter some SQL to convert"}
	}
	for _, d := range []dialect.Dialect{r.Source, r.Target} {
		if !d.Valid() || !d.Info().Converter {
			return &UserError{Message: "Please select a supported source and target dialect"}
		}
	}
	return nil
}

// Session runs conversions for one editor. Starting a conversion cancels
// the one in flight, if any. Methods are safe for concurrent use.
type Session struct {
	Completer Completer
	Logger    logrus.FieldLogger

	mu      sync.Mutex
	current uuid.UUID
	cancel  context.CancelFunc
}

// Convert streams the conversion of req, passing every intermediate result
// to onUpdate (which may be nil). When the conversion is canceled, through
// ctx or by a newer Convert or Cancel, the partial result is returned with
// Canceled set and a nil error.
func (s *Session) Convert(ctx context.Context, req Request, onUpdate func(Result)) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	ctx, id := s.begin(ctx)
	defer s.end(id)

	log := s.logger().WithFields(logrus.Fields{
		"request": id.String(),
		"source":  req.Source.String(),
		"target":  req.Target.String(),
	})
	log.Debug("conversion started")

	stream, err := s.Completer.Stream(ctx, SystemPrompt(req.Source, req.Target), UserPrompt(req.Source, req.Target, req.SQL))
	if err != nil {
		if ctx.Err() != nil {
			log.Debug("conversion canceled")
			return Result{Canceled: true}, nil
		}
		log.WithError(err).Warn("completion request failed")
		return Result{}, ErrUpstream
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			log.WithError(cerr).Debug("closing completion stream")
		}
	}()

	var (
		ex     Extractor
		result Result
		chunks int
	)
	for {
		chunk, err := stream.Recv()
		if ctx.Err() != nil {
			log.WithField("chunks", chunks).Debug("conversion canceled")
			result.Canceled = true
			return result, nil
		}
		if err == io.EOF {
			result = ex.Finish()
			notify(onUpdate, result)
			log.WithFields(logrus.Fields{"chunks": chunks, "framed": result.Framed}).Debug("conversion finished")
			return result, nil
		}
		if err != nil {
			log.WithError(err).Warn("completion stream failed")
			return Result{}, ErrUpstream
		}
		if chunk == "" {
			continue
		}
		chunks++
		result = ex.Feed(chunk)
		notify(onUpdate, result)
	}
}

// Cancel stops the conversion in flight, if any.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) begin(parent context.Context) (context.Context, uuid.UUID) {
	ctx, cancel := context.WithCancel(parent)
	id := uuid.Must(uuid.NewV4())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.current, s.cancel = id, cancel
	return ctx, id
}

func (s *Session) end(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == id && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

func notify(onUpdate func(Result), r Result) {
	if onUpdate != nil {
		onUpdate(r)
	}
}
