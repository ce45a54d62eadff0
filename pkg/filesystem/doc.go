// Package filesystem is a portable layer over the native POSIX and Windows
// filesystem primitives.
//
// It models file status (type, permissions, owner and times), resolves
// canonical, home, standard, cache and temporary directory paths, and
// iterates directories flat or recursively. All native calls go through a
// Backend; the native one is selected at build time and an afero-backed one
// serves in-memory use.
//
// A status query for a path that does not exist is not an error: it returns a
// FileStatus of type TypeNotFound. Every other failure is returned as a
// *errors.FilesystemError carrying the portable code, the native code and the
// paths involved. Wrap any call with Must to panic on error instead.
//
// The current working directory is process-wide state. CurrentPath,
// SetCurrentPath and every operation that resolves a relative path read it
// without synchronization; callers that change it from several goroutines
// must coordinate themselves.
package filesystem
