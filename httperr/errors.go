// Package httperr defines the error taxonomy shared by every component in
// webtools along with renderers that turn errors into HTTP responses.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a structured HTTP error. It carries the status code that should be
// sent to the client, an optional human-readable message, and optional extra
// response headers (e.g. WWW-Authenticate for 401s).
type Error struct {
	Code    int
	Message string
	Headers http.Header
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.StatusLine()
	}
	return fmt.Sprintf("%s: %s", e.StatusLine(), e.Message)
}

// StatusLine returns the status code with its canonical reason phrase,
// e.g. "404 Not Found".
func (e *Error) StatusLine() string {
	return fmt.Sprintf("%d %s", e.Code, http.StatusText(e.Code))
}

// Is implements errors.Is comparison by status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithHeader returns a copy of the error with an additional response header.
func (e *Error) WithHeader(key, value string) *Error {
	headers := make(http.Header, len(e.Headers)+1)
	for k, v := range e.Headers {
		headers[k] = append([]string(nil), v...)
	}
	headers.Add(key, value)
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Headers: headers,
	}
}

// New creates an error with an arbitrary status code.
func New(code int, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// NewBadRequest creates a 400 error.
func NewBadRequest(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

// NewForbidden creates a 403 error.
func NewForbidden(msg string) *Error {
	return &Error{Code: http.StatusForbidden, Message: msg}
}

// NewNotFound creates a 404 error.
func NewNotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

// NewMethodNotAllowed creates a 405 error.
func NewMethodNotAllowed(msg string) *Error {
	return &Error{Code: http.StatusMethodNotAllowed, Message: msg}
}

// NewPayloadTooLarge creates a 413 error.
func NewPayloadTooLarge(msg string) *Error {
	return &Error{Code: http.StatusRequestEntityTooLarge, Message: msg}
}

// NewUnsupportedMediaType creates a 415 error.
func NewUnsupportedMediaType(msg string) *Error {
	return &Error{Code: http.StatusUnsupportedMediaType, Message: msg}
}

// NewUnprocessableEntity creates a 422 error.
func NewUnprocessableEntity(msg string) *Error {
	return &Error{Code: http.StatusUnprocessableEntity, Message: msg}
}

// NewTooManyRequests creates a 429 error.
func NewTooManyRequests(msg string) *Error {
	return &Error{Code: http.StatusTooManyRequests, Message: msg}
}

// NewInternal creates a 500 error.
func NewInternal(msg string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg}
}

// InternalMessage is the client-facing message used when an unclassified
// failure is converted to a 500. Details of the underlying failure are never
// exposed to the client.
const InternalMessage = "A server error occurred. Please contact an administrator."

// From converts any error to an *Error. Errors that already are (or wrap) an
// *Error are returned as-is; everything else becomes a 500 with a generic
// message.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewInternal(InternalMessage)
}
