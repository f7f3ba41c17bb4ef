package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for blob names without a known document
	// extension.
	ErrUnknownFormat = errors.New("rules: unknown document format")

	// ErrInvalidLimit is the cause of a skip whose limit could not be parsed.
	ErrInvalidLimit = errors.New("rules: invalid limit")
)

// DecodeError reports a blob that could not be decoded. It aborts the load.
type DecodeError struct {
	Source string
	// Line is the 1-based line of a JSON lines document, or 0.
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rules: decode %s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("rules: decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
