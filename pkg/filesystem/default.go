package filesystem

import (
	"time"

	"github.com/arthur-debert/portfs/pkg/fspath"
)

// The functions below run against Default().

// Status returns the status of p, following a terminal symlink.
func Status(p fspath.Path) (FileStatus, error) { return defaultFS.Status(p) }

// SymlinkStatus returns the status of p itself.
func SymlinkStatus(p fspath.Path) (FileStatus, error) { return defaultFS.SymlinkStatus(p) }

// Exists reports whether p names an existing object.
func Exists(p fspath.Path) (bool, error) { return defaultFS.Exists(p) }

// IsDirectory reports whether p is, or links to, a directory.
func IsDirectory(p fspath.Path) (bool, error) { return defaultFS.IsDirectory(p) }

// IsRegularFile reports whether p is, or links to, a regular file.
func IsRegularFile(p fspath.Path) (bool, error) { return defaultFS.IsRegularFile(p) }

// IsSymlink reports whether p itself is a symlink.
func IsSymlink(p fspath.Path) (bool, error) { return defaultFS.IsSymlink(p) }

// IsSocket reports whether p is a socket.
func IsSocket(p fspath.Path) (bool, error) { return defaultFS.IsSocket(p) }

// IsFIFO reports whether p is a named pipe.
func IsFIFO(p fspath.Path) (bool, error) { return defaultFS.IsFIFO(p) }

// IsBlockFile reports whether p is a block device.
func IsBlockFile(p fspath.Path) (bool, error) { return defaultFS.IsBlockFile(p) }

// IsCharacterFile reports whether p is a character device.
func IsCharacterFile(p fspath.Path) (bool, error) { return defaultFS.IsCharacterFile(p) }

// IsDeviceFile reports whether p is a block or character device.
func IsDeviceFile(p fspath.Path) (bool, error) { return defaultFS.IsDeviceFile(p) }

// IsOther reports whether p exists but is not a file, directory or symlink.
func IsOther(p fspath.Path) (bool, error) { return defaultFS.IsOther(p) }

// LastWriteTime returns the modification time of p.
func LastWriteTime(p fspath.Path) (time.Time, error) { return defaultFS.LastWriteTime(p) }

// Permissions changes the permissions of p.
func Permissions(p fspath.Path, perm Perms) error { return defaultFS.Permissions(p, perm) }

// Equivalent reports whether a and b resolve to the same object.
func Equivalent(a, b fspath.Path) (bool, error) { return defaultFS.Equivalent(a, b) }

// Remove deletes a file or an empty directory.
func Remove(p fspath.Path) error { return defaultFS.Remove(p) }

// CreateDirectory creates p; its parent must exist.
func CreateDirectory(p fspath.Path, perm Perms) error { return defaultFS.CreateDirectory(p, perm) }

// CreateDirectories creates p and any missing parents.
func CreateDirectories(p fspath.Path, perm Perms) error { return defaultFS.CreateDirectories(p, perm) }

// CreateDirectoryFrom creates p with the permissions of cloneFrom.
func CreateDirectoryFrom(p, cloneFrom fspath.Path) error {
	return defaultFS.CreateDirectoryFrom(p, cloneFrom)
}

// Canonical resolves p against base.
func Canonical(p, base fspath.Path) (fspath.Path, error) { return defaultFS.Canonical(p, base) }

// CanonicalCwd resolves p against the current directory.
func CanonicalCwd(p fspath.Path) (fspath.Path, error) { return defaultFS.CanonicalCwd(p) }

// CurrentPath returns the process working directory.
func CurrentPath() (fspath.Path, error) { return defaultFS.CurrentPath() }

// SetCurrentPath changes the process working directory.
func SetCurrentPath(p fspath.Path) error { return defaultFS.SetCurrentPath(p) }

// StandardDirectoryPath resolves kind for domain.
func StandardDirectoryPath(domain Domain, kind DirectoryKind, opts StandardDirectoryOptions) (fspath.Path, error) {
	return defaultFS.StandardDirectoryPath(domain, kind, opts)
}

// StandardDirectory resolves kind in the user domain, creating it.
func StandardDirectory(kind DirectoryKind) (fspath.Path, error) { return defaultFS.StandardDirectory(kind) }

// CacheDirectoryPath resolves the machine local user cache, creating it.
func CacheDirectoryPath() (fspath.Path, error) { return defaultFS.CacheDirectoryPath() }

// TempDirectoryPath returns the directory for temporary files.
func TempDirectoryPath() (fspath.Path, error) { return defaultFS.TempDirectoryPath() }

// MountPath returns the mount point of the volume holding p.
func MountPath(p fspath.Path) (fspath.Path, error) { return defaultFS.MountPath(p) }

// IsMountpoint reports whether p is the mount point of its volume.
func IsMountpoint(p fspath.Path) (bool, error) { return defaultFS.IsMountpoint(p) }

// NewDirectoryIterator lists the direct children of p.
func NewDirectoryIterator(p fspath.Path, opts DirectoryOptions) (*DirectoryIterator, error) {
	return defaultFS.NewDirectoryIterator(p, opts)
}

// NewRecursiveDirectoryIterator lists p and all of its subdirectories.
func NewRecursiveDirectoryIterator(p fspath.Path, opts DirectoryOptions) (*DirectoryIterator, error) {
	return defaultFS.NewRecursiveDirectoryIterator(p, opts)
}
