// Package errors defines the coded error type used across wsp.
//
// Every failure that reaches the command layer is a *WspError carrying a
// stable ErrorCode, so callers and tests can match on the category of a
// failure without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Environment lookup
	ErrHomeDirUnavailable ErrorCode = "HOME_DIR_UNAVAILABLE"

	// Selection errors
	ErrWorkspaceNotFound   ErrorCode = "WORKSPACE_NOT_FOUND"
	ErrEnvironmentNotFound ErrorCode = "ENVIRONMENT_NOT_FOUND"
	ErrEmptyWorkspaces     ErrorCode = "EMPTY_WORKSPACES"
	ErrEmptyEnvironments   ErrorCode = "EMPTY_ENVIRONMENTS"

	// Filesystem
	ErrIOFailure ErrorCode = "IO_FAILURE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// WspError represents a structured error with code and details
type WspError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WspError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WspError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a *WspError with the same code.
func (e *WspError) Is(target error) bool {
	var targetErr *WspError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WspError with the given code and message
func New(code ErrorCode, message string) *WspError {
	return &WspError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WspError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WspError {
	return &WspError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WspError
func Wrap(err error, code ErrorCode, message string) *WspError {
	if err == nil {
		return nil
	}
	return &WspError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WspError {
	if err == nil {
		return nil
	}
	return &WspError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// IO wraps a filesystem failure on path. It returns nil for a nil err so it
// can be used directly in return statements.
func IO(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIOFailure, "%s %s", op, path).WithDetail("path", path)
}

// WithDetail adds a detail to the error
func (e *WspError) WithDetail(key string, value interface{}) *WspError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wspErr *WspError
	if errors.As(err, &wspErr) {
		return wspErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WspError
func GetErrorCode(err error) ErrorCode {
	var wspErr *WspError
	if errors.As(err, &wspErr) {
		return wspErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WspError
func GetErrorDetails(err error) map[string]interface{} {
	var wspErr *WspError
	if errors.As(err, &wspErr) {
		return wspErr.Details
	}
	return nil
}
