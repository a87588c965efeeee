package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the transport boundary.
type Kind string

const (
	KindInvalidRequest  Kind = "INVALID_REQUEST"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindConflict        Kind = "CONFLICT"
	KindInternal        Kind = "INTERNAL"
)

// InternalMessage is the only text callers ever see for KindInternal.
const InternalMessage = "internal server error"

var kindStatus = map[Kind]int{
	KindInvalidRequest:  http.StatusBadRequest,
	KindUnauthenticated: http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindConflict:        http.StatusConflict,
	KindInternal:        http.StatusInternalServerError,
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors of the same kind so errors.Is(err, ErrForbidden) works on clones.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Status returns the HTTP status for the error kind.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// PublicMessage is the caller-visible body. Internal details never leave the process.
func (e *Error) PublicMessage() string {
	if e.Kind == KindInternal {
		return InternalMessage
	}
	return e.Message
}

// New creates a new Error instance.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

var (
	ErrInvalidRequest  = New(KindInvalidRequest, "bad request")
	ErrUnauthenticated = New(KindUnauthenticated, "unauthorized")
	ErrForbidden       = New(KindForbidden, "forbidden")
	ErrConflict        = New(KindConflict, "conflict")
	ErrInternal        = New(KindInternal, InternalMessage)
)

// FromError normalises any error into an *Error. Unrecognised failures become KindInternal.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, KindInternal, InternalMessage)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Invalid is shorthand for an InvalidRequest with a formatted message.
func Invalid(format string, args ...interface{}) *Error {
	return New(KindInvalidRequest, fmt.Sprintf(format, args...))
}
