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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Template errors
	ErrInvalidTemplate  ErrorCode = "INVALID_TEMPLATE"
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"

	// Argument errors
	ErrInvalidArgumentSyntax ErrorCode = "INVALID_ARGUMENT_SYNTAX"
	ErrFileRead              ErrorCode = "FILE_READ"
	ErrMissingArgument       ErrorCode = "MISSING_ARGUMENT"

	// Codec errors
	ErrUnknownCodec ErrorCode = "UNKNOWN_CODEC"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Output errors
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
)

// SnippetError represents a structured error with code and details
type SnippetError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SnippetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SnippetError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SnippetError with the same code
func (e *SnippetError) Is(target error) bool {
	var targetErr *SnippetError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SnippetError with the given code and message
func New(code ErrorCode, message string) *SnippetError {
	return &SnippetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SnippetError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SnippetError {
	return &SnippetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SnippetError
func Wrap(err error, code ErrorCode, message string) *SnippetError {
	if err == nil {
		return nil
	}
	return &SnippetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SnippetError {
	if err == nil {
		return nil
	}
	return &SnippetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SnippetError) WithDetail(key string, value interface{}) *SnippetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var snippetErr *SnippetError
	if errors.As(err, &snippetErr) {
		return snippetErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SnippetError
func GetErrorCode(err error) ErrorCode {
	var snippetErr *SnippetError
	if errors.As(err, &snippetErr) {
		return snippetErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SnippetError
func GetErrorDetails(err error) map[string]interface{} {
	var snippetErr *SnippetError
	if errors.As(err, &snippetErr) {
		return snippetErr.Details
	}
	return nil
}
