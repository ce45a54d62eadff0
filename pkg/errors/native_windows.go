//go:build windows

package errors

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

func nativeCodeOf(err error) NativeCode {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return NativeCode{Value: int64(errno), Category: CategorySystem}
	}
	return NativeCode{}
}

func nativeMessage(c NativeCode) string {
	return syscall.Errno(uint32(c.Value)).Error()
}

func nativeKind(c NativeCode) ErrorCode {
	switch syscall.Errno(uint32(c.Value)) {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND, windows.ERROR_INVALID_DRIVE:
		return ErrNotFound
	case windows.ERROR_ALREADY_EXISTS, windows.ERROR_FILE_EXISTS:
		return ErrAlreadyExists
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_SHARING_VIOLATION:
		return ErrPermission
	case windows.ERROR_DIRECTORY:
		return ErrNotDirectory
	case windows.ERROR_DIR_NOT_EMPTY:
		return ErrNotEmpty
	case windows.ERROR_INVALID_NAME, windows.ERROR_INVALID_PARAMETER, windows.ERROR_BAD_PATHNAME:
		return ErrInvalidInput
	case windows.ERROR_NOT_ENOUGH_MEMORY, windows.ERROR_TOO_MANY_OPEN_FILES, windows.ERROR_DISK_FULL:
		return ErrResource
	case windows.ERROR_NOT_SUPPORTED, windows.ERROR_CALL_NOT_IMPLEMENTED:
		return ErrNotSupported
	default:
		return ErrIO
	}
}
