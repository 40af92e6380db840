// Package errors provides structured errors for the Lynxviz application.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] next to its human-readable message, so the CLI can pick an exit
// path and the HTTP API can pick a status without string matching. Codes
// group by prefix: INVALID_* for rejected input values, MALFORMED_* for
// structurally broken input, *_NOT_FOUND for missing resources, and
// *_FAILED / *_FAILURE for subsystem trouble.
//
// Construct errors with [New] or wrap an underlying cause with [Wrap]:
//
//	err := errors.New(errors.ErrCodeInvalidDirection, "unknown direction: %s", dir)
//
//	err := errors.Wrap(errors.ErrCodeStoreFailure, origErr, "save layout %s", id)
//
// Inspect them with [Is], [GetCode], or [UserMessage]; all three unwrap
// the chain, so codes survive fmt.Errorf("%w") wrapping in between.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidVariant   Code = "INVALID_VARIANT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidOptions   Code = "INVALID_OPTIONS"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Structural input errors (abort the whole pass)
	ErrCodeMalformedInput Code = "MALFORMED_INPUT"

	// Recoverable graph diagnostics
	ErrCodeDuplicateNode Code = "DUPLICATE_NODE"
	ErrCodeDanglingEdge  Code = "DANGLING_EDGE"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeLayoutNotFound Code = "LAYOUT_NOT_FOUND"

	// Subsystem failures
	ErrCodeLayoutFailed Code = "LAYOUT_FAILED"
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeCacheFailure Code = "CACHE_FAILURE"
	ErrCodeStoreFailure Code = "STORE_FAILURE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error renders "CODE: message" with the cause chained on when present.
func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap exposes the cause to the errors package.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that records cause underneath a formatted message.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// asError finds the first *Error in err's chain.
func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	e, ok := asError(err)
	return ok && e.Code == code
}

// GetCode extracts the code from err, or "" for foreign errors.
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for display.
// Foreign errors pass through unchanged.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}
