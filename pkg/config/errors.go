package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil configuration
	// pointer.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParseFailed is returned when environment variables cannot be
	// parsed into the configuration struct.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
