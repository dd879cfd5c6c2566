// Package errors provides coded, structured errors for phint.
//
// Every error carries a stable ErrorCode so callers and tests can branch on
// the category of failure without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Filesystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Encoding errors
	ErrJSONDecode ErrorCode = "JSON_DECODE"
	ErrJSONEncode ErrorCode = "JSON_ENCODE"

	// Source loading errors
	ErrTypeLoad ErrorCode = "TYPE_LOAD"
)

// PhintError represents a structured error with code and details
type PhintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PhintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PhintError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PhintError with the same code
func (e *PhintError) Is(target error) bool {
	var targetErr *PhintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PhintError with the given code and message
func New(code ErrorCode, message string) *PhintError {
	return &PhintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PhintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PhintError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *PhintError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PhintError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *PhintError) WithDetail(key string, value interface{}) *PhintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var phintErr *PhintError
	if errors.As(err, &phintErr) {
		return phintErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PhintError
func GetErrorCode(err error) ErrorCode {
	var phintErr *PhintError
	if errors.As(err, &phintErr) {
		return phintErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PhintError
func GetErrorDetails(err error) map[string]interface{} {
	var phintErr *PhintError
	if errors.As(err, &phintErr) {
		return phintErr.Details
	}
	return nil
}
