// Package errors provides the coded errors of sbgnconv.
//
// Every failure that reaches the CLI or the conversion service carries a
// [Code]. The service maps codes to HTTP statuses with [HTTPStatus]; the CLI
// prints [UserMessage].
//
// # Error Codes
//
//   - INVALID_*: the document or a request parameter is malformed
//   - *_NOT_FOUND: a file or resource does not exist
//   - UNRESOLVED_REFERENCE, TOO_DEEP: the document parsed but no map could
//     be built from it
//   - UNSUPPORTED: a valid document the converter cannot handle (entity
//     relationship maps)
//   - INTERNAL_ERROR: a bug
//
// Errors raised while building a map name the glyph or arc at fault with
// [Error.At]; [ElementOf] recovers it.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnresolvedReference, "arc %s: unknown source %q", a.ID, a.Source).At(a.ID)
//	if errors.Is(err, errors.ErrCodeUnresolvedReference) {
//	    log.Warn("broken arc", "id", errors.ElementOf(err))
//	}
//
//	// Add context and keep the code of the cause
//	err = errors.Annotate(err, "read %s", path)
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
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidLanguage Code = "INVALID_LANGUAGE"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidID       Code = "INVALID_ID"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Map construction errors
	ErrCodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"
	ErrCodeTooDeep             Code = "TOO_DEEP"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)

	// Element is the id of the glyph or arc the error is about, if any.
	Element string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// At records the id of the offending glyph or arc and returns e.
func (e *Error) At(id string) *Error {
	e.Element = id
	return e
}

// Annotate wraps err with a message and keeps its code, falling back to
// ErrCodeInternal for errors without one.
func Annotate(err error, format string, args ...any) *Error {
	code := GetCode(err)
	if code == "" {
		code = ErrCodeInternal
	}
	return Wrap(code, err, format, args...)
}

// ElementOf returns the outermost element id recorded in err's chain, or "".
func ElementOf(err error) string {
	for err != nil {
		e, ok := as(err)
		if !ok {
			return ""
		}
		if e.Element != "" {
			return e.Element
		}
		err = e.Cause
	}
	return ""
}

// as returns the first *Error in err's chain.
func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the first *Error in err's chain carries code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of a coded error without its code prefix,
// and the plain text of any other error.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error code to the status the conversion service answers with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidLanguage,
		ErrCodeInvalidPath, ErrCodeInvalidID, ErrCodeUnresolvedReference, ErrCodeTooDeep:
		return 400
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return 404
	case ErrCodeUnsupported:
		return 422
	case ErrCodeTimeout:
		return 504
	default:
		return 500
	}
}
