// Package errors provides the unified error domain for portfs.
//
// Native failures (errno on POSIX, GetLastError and HRESULT on Windows) are
// translated into a FilesystemError carrying a portable ErrorCode, the
// native code tagged with its Category, a message and up to two paths.
// Callers compare kinds portably:
//
//	if errors.IsErrorCode(err, errors.ErrPermission) { ... }
package errors
