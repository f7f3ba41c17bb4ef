package recid

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongVariant is the cause of the panic raised when a variant accessor is
	// called on an ID of a different Kind.
	ErrWrongVariant = errors.New("recid: wrong identifier variant")

	// ErrUnsupportedIdentifierType is returned when an ID of a non-indexable Kind
	// (FormID or Invalid) is registered in an index.
	ErrUnsupportedIdentifierType = errors.New("recid: unsupported identifier type")
)

// WrongVariantError describes a variant accessor called on the wrong Kind.
// It is raised as a panic value.
type WrongVariantError struct {
	Want Kind
	Got  Kind
}

func (e *WrongVariantError) Error() string {
	return fmt.Sprintf("recid: cannot access %s on a %s identifier", e.Want, e.Got)
}

func (e *WrongVariantError) Unwrap() error { return ErrWrongVariant }
