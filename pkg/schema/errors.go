package schema

import "errors"

var (
	// ErrInvalidSchema is returned when a control type definition cannot
	// be read or is missing required fields.
	ErrInvalidSchema = errors.New("schema: invalid control type definition")

	// ErrUnknownRule is returned when a definition names a rule kind that
	// has no built-in implementation.
	ErrUnknownRule = errors.New("schema: unknown rule kind")
)
