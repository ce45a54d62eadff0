//go:build unix

package errors

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

func nativeCodeOf(err error) NativeCode {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return NativeCode{Value: int64(errno), Category: CategoryPOSIX}
	}
	return NativeCode{}
}

func nativeMessage(c NativeCode) string {
	errno := syscall.Errno(c.Value)
	if name := unix.ErrnoName(errno); name != "" {
		return name + ": " + errno.Error()
	}
	return errno.Error()
}

func nativeKind(c NativeCode) ErrorCode {
	switch syscall.Errno(c.Value) {
	case unix.ENOENT:
		return ErrNotFound
	case unix.EEXIST:
		return ErrAlreadyExists
	case unix.EACCES, unix.EPERM:
		return ErrPermission
	case unix.ENOTDIR:
		return ErrNotDirectory
	case unix.EISDIR:
		return ErrIsDirectory
	case unix.ENOTEMPTY:
		return ErrNotEmpty
	case unix.ELOOP:
		return ErrSymlinkLoop
	case unix.EINVAL, unix.ENAMETOOLONG:
		return ErrInvalidInput
	case unix.EMFILE, unix.ENFILE, unix.ENOMEM, unix.ENOSPC:
		return ErrResource
	case unix.ENOTSUP, unix.ENOSYS:
		return ErrNotSupported
	default:
		return ErrIO
	}
}
