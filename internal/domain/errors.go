package domain

import "errors"

var (
	// ErrInvalidInput marks a malformed guess. Nothing is recorded and the
	// attempt index does not advance; the caller may re-prompt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState marks an operation applied to a session in the wrong
	// status, e.g. submitting a guess to a paused session.
	ErrInvalidState = errors.New("invalid session state")
)
