package domain

import "errors"

// Sentinel error kinds. Call sites wrap these in an *Error carrying the exact
// user-facing message; the API layer resolves kinds to HTTP status codes.
var (
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("duplicate record")
	ErrNotFound            = errors.New("record not found")
	ErrForbidden           = errors.New("access forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrTimeout             = errors.New("upstream timeout")
)

// Error pairs a sentinel kind with a user-facing message. errors.Is matches
// the kind, Error() yields the message verbatim.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// E builds an *Error of the given kind.
func E(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}
