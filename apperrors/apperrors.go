package apperrors

import "net/http"

// Kind classifies an error so the HTTP layer can map it to a status code
// without inspecting message text.
type Kind int

const (
	Validation Kind = iota
	Unauthorized
	Forbidden
	NotFound
	Internal
)

// Error carries a client-safe message and, for Internal errors, the
// underlying cause. The cause is logged, never echoed to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewValidation(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

func NewUnauthorized(message string) *Error {
	return &Error{Kind: Unauthorized, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: Forbidden, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

// NewInternal wraps an unexpected failure. The wrapped error is kept for
// logging only.
func NewInternal(err error) *Error {
	return &Error{Kind: Internal, Message: "Internal Server Error", Err: err}
}
