package validity

import "errors"

var (
	// ErrMissingCheck is returned when a descriptor declares neither a
	// synchronous nor an asynchronous check.
	ErrMissingCheck = errors.New("validity: descriptor must define Check or CheckAsync")

	// ErrConflictingChecks is returned when a descriptor declares both a
	// synchronous and an asynchronous check.
	ErrConflictingChecks = errors.New("validity: descriptor cannot define both Check and CheckAsync")
)
