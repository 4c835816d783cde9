package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Scanner errors
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// Materialization errors
	ErrEmptyInput ErrorCode = "EMPTY_INPUT"

	// Any underlying read/write/create-directory/copy failure
	ErrIO ErrorCode = "IO"
)

// Detail keys attached to IO errors
const (
	DetailOp   = "op"
	DetailPath = "path"
)

// ReorderError represents a structured error with code and details
type ReorderError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ReorderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ReorderError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ReorderError) Is(target error) bool {
	var targetErr *ReorderError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ReorderError with the given code and message
func New(code ErrorCode, message string) *ReorderError {
	return &ReorderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ReorderError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ReorderError {
	return &ReorderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ReorderError
func Wrap(err error, code ErrorCode, message string) *ReorderError {
	if err == nil {
		return nil
	}
	return &ReorderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ReorderError {
	if err == nil {
		return nil
	}
	return &ReorderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// IO wraps a filesystem failure as an ErrIO error. The message names the
// failing operation and path so it can be shown to the user verbatim.
func IO(err error, op, path string) *ReorderError {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIO, "%s %s", op, path).
		WithDetail(DetailOp, op).
		WithDetail(DetailPath, path)
}

// WithDetail adds a detail to the error
func (e *ReorderError) WithDetail(key string, value interface{}) *ReorderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ReorderError) WithDetails(details map[string]interface{}) *ReorderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var reorderErr *ReorderError
	if errors.As(err, &reorderErr) {
		return reorderErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ReorderError
func GetErrorCode(err error) ErrorCode {
	var reorderErr *ReorderError
	if errors.As(err, &reorderErr) {
		return reorderErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ReorderError
func GetErrorDetails(err error) map[string]interface{} {
	var reorderErr *ReorderError
	if errors.As(err, &reorderErr) {
		return reorderErr.Details
	}
	return nil
}
