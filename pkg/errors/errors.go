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

	// Template validation errors. These are raised while flattening,
	// before any I/O happens.
	ErrPathTraversal   ErrorCode = "PATH_TRAVERSAL"
	ErrEmptyFileName   ErrorCode = "EMPTY_FILE_NAME"
	ErrUnknownNodeType ErrorCode = "UNKNOWN_NODE_TYPE"
	ErrUnknownEncoding ErrorCode = "UNKNOWN_ENCODING"

	// Materialization errors
	ErrMaterializationIO ErrorCode = "MATERIALIZATION_IO"
	ErrContentDecode     ErrorCode = "CONTENT_DECODE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestLoad  ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
)

// LaunchError represents a structured error with code and details
type LaunchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LaunchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LaunchError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LaunchError) Is(target error) bool {
	var targetErr *LaunchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LaunchError with the given code and message
func New(code ErrorCode, message string) *LaunchError {
	return &LaunchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LaunchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LaunchError {
	return &LaunchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LaunchError
func Wrap(err error, code ErrorCode, message string) *LaunchError {
	if err == nil {
		return nil
	}
	return &LaunchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LaunchError {
	if err == nil {
		return nil
	}
	return &LaunchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LaunchError) WithDetail(key string, value interface{}) *LaunchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LaunchError) WithDetails(details map[string]interface{}) *LaunchError {
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
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LaunchError
func GetErrorCode(err error) ErrorCode {
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LaunchError
func GetErrorDetails(err error) map[string]interface{} {
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Details
	}
	return nil
}

// IsValidation reports whether err is one of the template validation
// errors raised before any storage is touched.
func IsValidation(err error) bool {
	switch GetErrorCode(err) {
	case ErrPathTraversal, ErrEmptyFileName, ErrUnknownNodeType, ErrUnknownEncoding:
		return true
	}
	return false
}
