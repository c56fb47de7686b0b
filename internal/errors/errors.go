// Package errors defines the coded error type shared by the validator, the
// registry builder and the converter. Every failure a command can report maps
// to one Code, so callers and tests match on the kind rather than the text.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

const (
	ErrMissingFile       Code = "missing-file"
	ErrMalformedDocument Code = "malformed-document"
	ErrSchemaViolation   Code = "schema-violation"
	ErrIDMismatch        Code = "id-mismatch"
	ErrInvalidTag        Code = "invalid-tag"
	ErrInvalidCustomTag  Code = "invalid-custom-tag"
	ErrMalformedLine     Code = "malformed-line"
	ErrEmptyResult       Code = "empty-result"
	ErrReadFailed        Code = "read-failed"
	ErrWriteFailed       Code = "write-failed"
)

// Error is a failure with a stable code, a message, optional details and an
// optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetail attaches a key/value pair and returns the receiver.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. Wrap returns nil when err is nil.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps err with a code and a formatted message.
func Wrapf(err error, code Code, format string, args ...interface{}) *Error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err's chain carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
