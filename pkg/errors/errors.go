// Package errors provides structured error types for waffle.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every configuration problem is fatal for the chart (or panel) that triggered
// it. There is no transient error class in the layout core; NETWORK-style codes
// only appear in the cache and store layers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLengthMismatch, "length of colors doesn't match the values")
//	if errors.Is(err, errors.ErrCodeLengthMismatch) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read chart %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidInput          Code = "INVALID_INPUT"
	ErrCodeInvalidValues         Code = "INVALID_VALUES"
	ErrCodeInvalidGrid           Code = "INVALID_GRID"
	ErrCodeInvalidRoundingRule   Code = "INVALID_ROUNDING_RULE"
	ErrCodeInvalidLocation       Code = "INVALID_LOCATION"
	ErrCodeInvalidArrangingStyle Code = "INVALID_ARRANGING_STYLE"
	ErrCodeLengthMismatch        Code = "LENGTH_MISMATCH"
	ErrCodeNegativeValue         Code = "NEGATIVE_VALUE"
	ErrCodeInvalidColor          Code = "INVALID_COLOR"
	ErrCodeInvalidPanel          Code = "INVALID_PANEL"

	// Output errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsConfiguration reports whether err was caused by an invalid chart configuration.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidValues, ErrCodeInvalidGrid,
		ErrCodeInvalidRoundingRule, ErrCodeInvalidLocation, ErrCodeInvalidArrangingStyle,
		ErrCodeLengthMismatch, ErrCodeNegativeValue, ErrCodeInvalidColor, ErrCodeInvalidPanel,
		ErrCodeInvalidFormat, ErrCodeInvalidStyle:
		return true
	}
	return false
}

// HTTPStatus maps an error code to the HTTP status the API responds with.
func HTTPStatus(code Code) int {
	switch code {
	case "":
		return http.StatusInternalServerError
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	case ErrCodeInternal:
		return http.StatusInternalServerError
	}
	if IsConfiguration(&Error{Code: code}) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
