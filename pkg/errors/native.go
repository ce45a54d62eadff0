package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Category identifies which native error domain produced a code.
type Category int

const (
	// CategoryGeneric covers errors that did not come from a native call.
	CategoryGeneric Category = iota
	// CategoryPOSIX is errno.
	CategoryPOSIX
	// CategorySystem is the Windows GetLastError domain.
	CategorySystem
	// CategoryHRESULT is the Windows COM result domain.
	CategoryHRESULT
	// CategoryIdentity covers user and group resolution failures.
	CategoryIdentity
)

// String returns a string representation of the Category.
func (c Category) String() string {
	switch c {
	case CategoryPOSIX:
		return "posix"
	case CategorySystem:
		return "system"
	case CategoryHRESULT:
		return "hresult"
	case CategoryIdentity:
		return "identity"
	default:
		return "generic"
	}
}

// NativeCode is a numeric code tagged with the domain that produced it.
// The zero value means no native code was captured.
type NativeCode struct {
	Value    int64
	Category Category
}

// IsZero reports whether no native code was captured.
func (c NativeCode) IsZero() bool {
	return c.Value == 0
}

// Message returns the platform's description of the code.
func (c NativeCode) Message() string {
	if c.IsZero() {
		return ""
	}
	switch c.Category {
	case CategoryPOSIX, CategorySystem, CategoryHRESULT:
		return nativeMessage(c)
	case CategoryIdentity:
		return "identity could not be resolved"
	default:
		return fmt.Sprintf("error %d", c.Value)
	}
}

// Kind maps the code onto the portable error kinds.
func (c NativeCode) Kind() ErrorCode {
	if c.IsZero() {
		return ErrUnknown
	}
	switch c.Category {
	case CategoryPOSIX, CategorySystem:
		return nativeKind(c)
	case CategoryHRESULT:
		return ErrInternal
	case CategoryIdentity:
		return ErrIdentity
	default:
		return ErrUnknown
	}
}

func (c NativeCode) String() string {
	return fmt.Sprintf("%s:%d", c.Category, c.Value)
}

// NativeCodeOf extracts the native code carried by err, if any.
func NativeCodeOf(err error) NativeCode {
	if err == nil {
		return NativeCode{}
	}
	var fsErr *FilesystemError
	if errors.As(err, &fsErr) && !fsErr.Native.IsZero() {
		return fsErr.Native
	}
	return nativeCodeOf(err)
}

// Classify returns the portable kind for any error.
func Classify(err error) ErrorCode {
	if err == nil {
		return ErrUnknown
	}
	var fsErr *FilesystemError
	if errors.As(err, &fsErr) {
		return fsErr.Code
	}
	if kind := NativeCodeOf(err).Kind(); kind != ErrUnknown {
		return kind
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	case errors.Is(err, fs.ErrInvalid):
		return ErrInvalidInput
	case errors.Is(err, errors.ErrUnsupported):
		return ErrNotSupported
	}
	return ErrIO
}

// FromNative converts the error returned by a native call into a
// FilesystemError. err must be the value returned by the call itself so the
// native code is the one that call produced.
func FromNative(err error, message string, paths ...string) *FilesystemError {
	if err == nil {
		return nil
	}
	native := NativeCodeOf(err)
	fsErr := &FilesystemError{
		Code:    Classify(err),
		Native:  native,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
	return fsErr.WithPaths(paths...)
}

// FromHRESULT converts a COM result. Success codes (the high bit clear)
// return nil.
func FromHRESULT(hr int32, message string) *FilesystemError {
	if hr >= 0 {
		return nil
	}
	return &FilesystemError{
		Code:    ErrInternal,
		Native:  NativeCode{Value: int64(uint32(hr)), Category: CategoryHRESULT},
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// IdentityError reports a user or group that could not be resolved.
func IdentityError(err error, message string) *FilesystemError {
	return &FilesystemError{
		Code:    ErrIdentity,
		Native:  NativeCode{Value: 1, Category: CategoryIdentity},
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}
