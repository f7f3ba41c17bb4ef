package index

import (
	"errors"
	"fmt"

	"github.com/hupe1980/recid"
)

var (
	// ErrFrozen is returned by Builder.Add once the builder was frozen.
	ErrFrozen = errors.New("index: builder is frozen")

	// ErrNotSorted is the panic value raised when a wildcard string query runs
	// on a Builder that was modified since its last Sort.
	ErrNotSorted = errors.New("index: wildcard buckets are not sorted")
)

// UnsupportedIdentifierError is returned when an ID of a Kind that can not be
// indexed is added. The load can continue with the next entry.
type UnsupportedIdentifierError struct {
	ID recid.ID
}

func (e *UnsupportedIdentifierError) Error() string {
	return fmt.Sprintf("index: can not index %s identifier %q", e.ID.Kind(), e.ID.String())
}

func (e *UnsupportedIdentifierError) Unwrap() error { return recid.ErrUnsupportedIdentifierType }

var errTooManyEntries = errors.New("index: too many entries")
