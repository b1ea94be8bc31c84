// Package sqltext checks, minifies, compares and converts SQL text for a
// fixed set of dialects. The operations live in the validate, minify,
// sqldiff and convert packages; Toolkit puts them behind one configured
// value and adds checking of whole directories of SQL files.
package sqltext

import (
	"context"
	"io/fs"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/sqltext/convert"
	"github.com/vippsas/sqltext/dialect"
	"github.com/vippsas/sqltext/minify"
	"github.com/vippsas/sqltext/sqldiff"
	"github.com/vippsas/sqltext/validate"
	"golang.org/x/sync/errgroup"
)

// ErrNoCompleter is returned by Convert when no language model is
// configured.
var ErrNoCompleter = errors.New("no completion service configured")

type Options struct {
	Logger        logrus.FieldLogger
	PreviewLength int
	// Completer is the language model used by Convert; nil disables it.
	Completer convert.Completer
	// Concurrency is the number of files ValidateFiles checks at once.
	// Zero means one per CPU.
	Concurrency int
}

// Toolkit is safe for concurrent use, except that a new Convert cancels
// the one in flight.
type Toolkit struct {
	logger      logrus.FieldLogger
	validator   validate.Validator
	session     convert.Session
	concurrency int
}

func New(opts Options) *Toolkit {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Toolkit{
		logger:      logger,
		validator:   validate.Validator{Logger: logger, PreviewLength: opts.PreviewLength},
		session:     convert.Session{Completer: opts.Completer, Logger: logger},
		concurrency: concurrency,
	}
}

func (t *Toolkit) Validate(sql string, d dialect.Dialect) validate.Result {
	return t.validator.Validate(sql, d)
}

func (t *Toolkit) Minify(sql string, opts minify.Options) minify.Result {
	return minify.Minify(sql, opts)
}

func (t *Toolkit) Compare(original, modified string) sqldiff.Result {
	return sqldiff.Compare(original, modified)
}

// Convert converts req, cancelling any conversion still running. See
// convert.Session.
func (t *Toolkit) Convert(ctx context.Context, req convert.Request, onUpdate func(convert.Result)) (convert.Result, error) {
	if t.session.Completer == nil {
		return convert.Result{}, ErrNoCompleter
	}
	return t.session.Convert(ctx, req, onUpdate)
}

// FindFiles lists the *.sql files of fsys in lexical order, skipping
// hidden files and directories.
func FindFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != "." && (strings.HasPrefix(path, ".") || strings.Contains(path, "/.")) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sql") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "find sql files")
	}
	return files, nil
}

// ValidateFiles checks every *.sql file of fsys. It returns the files that
// were checked, and a DiagnosticsError if any of them is invalid. Other
// errors are failures to read fsys.
func (t *Toolkit) ValidateFiles(ctx context.Context, fsys fs.FS, d dialect.Dialect) ([]string, error) {
	files, err := FindFiles(fsys)
	if err != nil {
		return nil, err
	}

	results := make([]validate.Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := fs.ReadFile(fsys, file)
			if err != nil {
				return errors.Wrapf(err, "read %s", file)
			}
			results[i] = t.validator.Validate(string(buf), d)
			t.logger.WithFields(logrus.Fields{"file": file, "valid": results[i].IsValid}).Debug("checked")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return files, err
	}

	var diagnostics DiagnosticsError
	for i, result := range results {
		if !result.IsValid {
			diagnostics.Errors = append(diagnostics.Errors, FileDiagnostic{File: files[i], Diagnostic: *result.Error})
		}
	}
	if len(diagnostics.Errors) == 0 {
		return files, nil
	}
	return files, diagnostics
}
