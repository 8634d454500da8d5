package formctl

import "errors"

var (
	// ErrNilHost is returned when a control is constructed without a host.
	ErrNilHost = errors.New("formctl: host cannot be nil")

	// ErrMissingValidationTarget is returned when a control type requires
	// a validation target but the host cannot supply one.
	ErrMissingValidationTarget = errors.New("formctl: control type requires a validation target")
)
