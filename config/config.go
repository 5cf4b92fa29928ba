package config

import (
	"errors"
	"fmt"
	"os"
)

// CaseInsensitiveEnv disables case-sensitive matching when present, whatever its value
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// ErrInsufficientArguments is returned when the query or filename is missing
var ErrInsufficientArguments = errors.New("not enough arguments")

// Config holds the resolved search parameters for a single run
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// ArgumentError reports a problem with the command line
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// LookupFunc reports the value of an environment variable and whether it is set
type LookupFunc func(key string) (string, bool)

// New resolves a Config from the process arguments (program name at index 0)
// and the process environment
func New(args []string) (Config, error) {
	return FromEnv(args, os.LookupEnv)
}

// FromEnv resolves a Config using lookup in place of the process environment
func FromEnv(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 3 {
		return Config{}, &ArgumentError{Err: fmt.Errorf("%w: got %d, want <query> <filename>", ErrInsufficientArguments, len(args)-1)}
	}

	_, insensitive := lookup(CaseInsensitiveEnv)

	return Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !insensitive,
	}, nil
}
