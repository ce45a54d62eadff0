package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a portable error kind, independent of the native
// domain that produced the failure.
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotSupported ErrorCode = "NOT_SUPPORTED"

	// Filesystem errors
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrPermission    ErrorCode = "PERMISSION"
	ErrNotDirectory  ErrorCode = "NOT_DIRECTORY"
	ErrIsDirectory   ErrorCode = "IS_DIRECTORY"
	ErrNotEmpty      ErrorCode = "NOT_EMPTY"
	ErrSymlinkLoop   ErrorCode = "SYMLINK_LOOP"
	ErrIO            ErrorCode = "IO"
	ErrResource      ErrorCode = "RESOURCE"

	// Identity errors
	ErrIdentity ErrorCode = "IDENTITY"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FilesystemError represents a structured error with a portable code, the
// native code it was derived from and up to two associated paths.
type FilesystemError struct {
	Code    ErrorCode
	Native  NativeCode
	Message string
	Path1   string
	Path2   string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilesystemError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Path1 != "" {
		fmt.Fprintf(&b, " %q", e.Path1)
	}
	if e.Path2 != "" {
		fmt.Fprintf(&b, " %q", e.Path2)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, ": %v", e.Wrapped)
	}
	return b.String()
}

// Unwrap implements the errors.Unwrap interface
func (e *FilesystemError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilesystemError) Is(target error) bool {
	var targetErr *FilesystemError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilesystemError with the given code and message
func New(code ErrorCode, message string) *FilesystemError {
	return &FilesystemError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilesystemError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilesystemError {
	return &FilesystemError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilesystemError
func Wrap(err error, code ErrorCode, message string) *FilesystemError {
	if err == nil {
		return nil
	}
	return &FilesystemError{
		Code:    code,
		Native:  NativeCodeOf(err),
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilesystemError {
	if err == nil {
		return nil
	}
	return &FilesystemError{
		Code:    code,
		Native:  NativeCodeOf(err),
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithPaths attaches the paths involved in the failed operation.
func (e *FilesystemError) WithPaths(paths ...string) *FilesystemError {
	if len(paths) > 0 {
		e.Path1 = paths[0]
	}
	if len(paths) > 1 {
		e.Path2 = paths[1]
	}
	return e
}

// WithDetail adds a detail to the error
func (e *FilesystemError) WithDetail(key string, value interface{}) *FilesystemError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FilesystemError) WithDetails(details map[string]interface{}) *FilesystemError {
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
	var fsErr *FilesystemError
	if errors.As(err, &fsErr) {
		return fsErr.Code == code
	}
	return false
}

// IsNotFound reports whether err describes a missing file, whatever native
// domain produced it.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if IsErrorCode(err, ErrNotFound) {
		return true
	}
	return Classify(err) == ErrNotFound
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilesystemError
func GetErrorCode(err error) ErrorCode {
	var fsErr *FilesystemError
	if errors.As(err, &fsErr) {
		return fsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilesystemError
func GetErrorDetails(err error) map[string]interface{} {
	var fsErr *FilesystemError
	if errors.As(err, &fsErr) {
		return fsErr.Details
	}
	return nil
}
