package formkey

import "errors"

var (
	// ErrInvalidFormID is returned when a string is not an 8 digit hex FormID.
	ErrInvalidFormID = errors.New("formkey: invalid form id")

	// ErrInvalidModKey is returned when a string is not a plugin file name with a
	// recognised extension.
	ErrInvalidModKey = errors.New("formkey: invalid mod key")

	// ErrInvalidFormKey is returned when a string is not a "<id>:<plugin>" key.
	ErrInvalidFormKey = errors.New("formkey: invalid form key")
)
