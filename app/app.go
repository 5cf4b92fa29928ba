// Package app reads the target file, searches it and prints the matching lines.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/output"
	"github.com/takaishi/minigrep/search"
)

// IOError reports that the file to search could not be read
type IOError struct {
	Filename string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Filename, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

type options struct {
	logger      *slog.Logger
	color       output.ColorMode
	lineNumbers bool
}

// Option customizes Run
type Option func(*options)

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithColor sets when matches are highlighted
func WithColor(mode output.ColorMode) Option {
	return func(o *options) {
		o.color = mode
	}
}

// WithLineNumbers prefixes each match with its line number
func WithLineNumbers(enabled bool) Option {
	return func(o *options) {
		o.lineNumbers = enabled
	}
}

// Run searches cfg.Filename for cfg.Query and writes every matching line to w
func Run(cfg config.Config, w io.Writer, opts ...Option) error {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		color:  output.ColorAuto,
	}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger

	logger.Debug("starting search",
		"query", cfg.Query,
		"filename", cfg.Filename,
		"case_sensitive", cfg.CaseSensitive)

	data, err := os.ReadFile(cfg.Filename)
	if err != nil {
		return &IOError{Filename: cfg.Filename, Err: err}
	}
	contents := string(data)
	logger.Debug("file read", "filename", cfg.Filename, "bytes", len(data))

	out := output.New(w, output.Options{
		Query:         cfg.Query,
		CaseSensitive: cfg.CaseSensitive,
		Color:         o.color,
		LineNumbers:   o.lineNumbers,
	})

	var count int
	if o.lineNumbers {
		for _, m := range search.Matches(cfg.Query, contents, cfg.CaseSensitive) {
			if err := out.WriteNumbered(m.Line, m.Text); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			count++
		}
	} else {
		for _, line := range search.For(cfg.CaseSensitive)(cfg.Query, contents) {
			if err := out.WriteLine(line); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			count++
		}
	}

	logger.Debug("search finished", "matches", count)
	return nil
}
