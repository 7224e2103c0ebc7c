package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"minigrep/internal/config"
	"minigrep/internal/search"
)

var (
	ErrIO          = errors.New("io error")
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// IoError wraps a failure to read the input file or to write results.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return e.Err.Error()
}

func (e *IoError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

type Runner struct {
	logger *zap.Logger
	out    io.Writer
}

func NewRunner(logger *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		logger: logger,
		out:    out,
	}
}

// Run loads cfg.FilePath completely, then writes every matching line to out.
// Nothing is written when loading fails.
func (r *Runner) Run(cfg *config.Config) error {
	contents, err := r.load(cfg.FilePath)
	if err != nil {
		r.logger.Debug("load failed", zap.String("path", cfg.FilePath), zap.Error(err))
		return err
	}
	r.logger.Debug("file loaded", zap.String("path", cfg.FilePath), zap.Int("bytes", len(contents)))

	results := search.Search(cfg.Query, contents, cfg.IgnoreCase)
	r.logger.Debug("search finished",
		zap.String("query", cfg.Query),
		zap.Bool("ignore_case", cfg.IgnoreCase),
		zap.Int("matches", len(results)),
	)

	w := bufio.NewWriter(r.out)
	for _, line := range results {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return &IoError{Path: cfg.FilePath, Err: fmt.Errorf("write results: %w", err)}
		}
	}
	if err := w.Flush(); err != nil {
		return &IoError{Path: cfg.FilePath, Err: fmt.Errorf("write results: %w", err)}
	}
	return nil
}

func (r *Runner) load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IoError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IoError{Path: path, Err: fmt.Errorf("%s: %w", path, ErrInvalidUTF8)}
	}
	return string(data), nil
}
