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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Session environment errors
	ErrMissingOptionalTool ErrorCode = "MISSING_OPTIONAL_TOOL"
	ErrUnmatchedPattern    ErrorCode = "UNMATCHED_PATTERN"

	// Backing store errors
	ErrBackingStoreUnavailable ErrorCode = "BACKING_STORE_UNAVAILABLE"
	ErrStoreRead               ErrorCode = "STORE_READ"
	ErrStoreWrite              ErrorCode = "STORE_WRITE"

	// Version control errors
	ErrVcsQueryFailure ErrorCode = "VCS_QUERY_FAILURE"
	ErrNotARepository  ErrorCode = "NOT_A_REPOSITORY"
)

// DorcError represents a structured error with code and details
type DorcError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DorcError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DorcError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DorcError) Is(target error) bool {
	var targetErr *DorcError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DorcError with the given code and message
func New(code ErrorCode, message string) *DorcError {
	return &DorcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DorcError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DorcError {
	return &DorcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DorcError
func Wrap(err error, code ErrorCode, message string) *DorcError {
	if err == nil {
		return nil
	}
	return &DorcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DorcError {
	if err == nil {
		return nil
	}
	return &DorcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DorcError) WithDetail(key string, value interface{}) *DorcError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dorcErr *DorcError
	if errors.As(err, &dorcErr) {
		return dorcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DorcError
func GetErrorCode(err error) ErrorCode {
	var dorcErr *DorcError
	if errors.As(err, &dorcErr) {
		return dorcErr.Code
	}
	return ErrUnknown
}
