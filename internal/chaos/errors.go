package chaos

import "errors"

var (
	// ErrInvalidState indicates generation was requested with no fixed vertices.
	ErrInvalidState = errors.New("chaos: invalid state (no fixed vertices)")

	// ErrEmptyCollection indicates a removal from an empty vertex set.
	ErrEmptyCollection = errors.New("chaos: empty collection")
)
