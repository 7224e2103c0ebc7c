package config

import (
	"errors"
	"fmt"
)

// IgnoreCaseEnv switches the search to case-insensitive mode when present,
// whatever its value.
const IgnoreCaseEnv = "IGNORE_CASE"

var ErrNotEnoughArguments = errors.New("not enough arguments")

// LookupEnv has the shape of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// ArgumentError reports a missing positional argument.
type ArgumentError struct {
	Missing string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: missing %s", ErrNotEnoughArguments, e.Missing)
}

func (e *ArgumentError) Unwrap() error {
	return ErrNotEnoughArguments
}

// Build reads <program> <query> <file_path> from args. Arguments past the
// file path are ignored.
func Build(args []string, lookup LookupEnv) (*Config, error) {
	switch {
	case len(args) < 2:
		return nil, &ArgumentError{Missing: "query"}
	case len(args) < 3:
		return nil, &ArgumentError{Missing: "file path"}
	}

	_, ignoreCase := lookup(IgnoreCaseEnv)

	return &Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}
