package brd

import "errors"

// Sentinel errors returned by the board model. Callers test them with
// errors.Is; every wrapped error keeps the sentinel in its chain.
var (
	// ErrInvalidArgument reports a contract violation at a call site:
	// a negative dimension, too few signal contacts, bad units, a
	// duplicate pad name, or a destination without the required suffix.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a reference to a name that does not exist,
	// such as a pad name absent from an element's package.
	ErrNotFound = errors.New("not found")
)
