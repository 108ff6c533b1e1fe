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

	// Registry errors
	ErrRegistryFrozen  ErrorCode = "REGISTRY_FROZEN"
	ErrInvalidFunction ErrorCode = "INVALID_FUNCTION"

	// Pipeline errors
	ErrStageNotFound  ErrorCode = "STAGE_NOT_FOUND"
	ErrStageExecution ErrorCode = "STAGE_EXECUTION"
	ErrLiteralParse   ErrorCode = "LITERAL_PARSE"

	// Stage function errors, usually wrapped by ErrStageExecution
	ErrArity           ErrorCode = "ARITY"
	ErrTypeMismatch    ErrorCode = "TYPE_MISMATCH"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Project document errors
	ErrSchemaInvalid    ErrorCode = "SCHEMA_INVALID"
	ErrSchemaNotFound   ErrorCode = "SCHEMA_NOT_FOUND"
	ErrConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrOptionNotFound   ErrorCode = "OPTION_NOT_FOUND"
	ErrVariableNotFound ErrorCode = "VARIABLE_NOT_FOUND"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileExists ErrorCode = "FILE_EXISTS"
)

// AmakeError represents a structured error with code and details
type AmakeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AmakeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AmakeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AmakeError) Is(target error) bool {
	var targetErr *AmakeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AmakeError with the given code and message
func New(code ErrorCode, message string) *AmakeError {
	return &AmakeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AmakeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AmakeError {
	return &AmakeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AmakeError
func Wrap(err error, code ErrorCode, message string) *AmakeError {
	if err == nil {
		return nil
	}
	return &AmakeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AmakeError {
	if err == nil {
		return nil
	}
	return &AmakeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AmakeError) WithDetail(key string, value interface{}) *AmakeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *AmakeError) WithDetails(details map[string]interface{}) *AmakeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var amakeErr *AmakeError
		if !errors.As(err, &amakeErr) {
			return false
		}
		if amakeErr.Code == code {
			return true
		}
		err = amakeErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if not an AmakeError
func GetErrorCode(err error) ErrorCode {
	var amakeErr *AmakeError
	if errors.As(err, &amakeErr) {
		return amakeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AmakeError
func GetErrorDetails(err error) map[string]interface{} {
	var amakeErr *AmakeError
	if errors.As(err, &amakeErr) {
		return amakeErr.Details
	}
	return nil
}

// Cause returns the innermost wrapped error.
func Cause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
