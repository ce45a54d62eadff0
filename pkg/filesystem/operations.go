package filesystem

import (
	"time"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

// Status returns the status of p, following a terminal symlink. A path that
// does not exist yields a TypeNotFound status and a nil error.
func (fsys *FileSystem) Status(p fspath.Path) (FileStatus, error) {
	return fsys.status(p, true)
}

// SymlinkStatus is Status without following a terminal symlink.
func (fsys *FileSystem) SymlinkStatus(p fspath.Path) (FileStatus, error) {
	return fsys.status(p, false)
}

func (fsys *FileSystem) status(p fspath.Path, follow bool) (FileStatus, error) {
	if p.Empty() {
		return notFoundStatus(), nil
	}
	st, err := fsys.backend.Stat(p.Native(), follow)
	if err == nil {
		return st, nil
	}
	fsErr := errors.FromNative(err, "cannot query status", p.String())
	switch fsErr.Code {
	case errors.ErrNotFound, errors.ErrNotDirectory:
		return notFoundStatus(), nil
	}
	logger().Debug().Err(fsErr).Str("path", p.String()).Bool("follow", follow).Msg("status failed")
	return NewFileStatus(), fsErr
}

// Exists reports whether p names an existing object, following symlinks.
func (fsys *FileSystem) Exists(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.Exists(), err
}

// IsDirectory reports whether p is, or links to, a directory.
func (fsys *FileSystem) IsDirectory(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsDirectory(), err
}

// IsRegularFile reports whether p is, or links to, a regular file.
func (fsys *FileSystem) IsRegularFile(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsRegularFile(), err
}

// IsSymlink inspects p itself, so it is answered from SymlinkStatus.
func (fsys *FileSystem) IsSymlink(p fspath.Path) (bool, error) {
	st, err := fsys.SymlinkStatus(p)
	return st.IsSymlink(), err
}

// IsSocket reports whether p is a socket.
func (fsys *FileSystem) IsSocket(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsSocket(), err
}

// IsFIFO reports whether p is a named pipe.
func (fsys *FileSystem) IsFIFO(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsFIFO(), err
}

// IsBlockFile reports whether p is a block device.
func (fsys *FileSystem) IsBlockFile(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsBlockFile(), err
}

// IsCharacterFile reports whether p is a character device.
func (fsys *FileSystem) IsCharacterFile(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsCharacterFile(), err
}

// IsDeviceFile reports whether p is a block or character device.
func (fsys *FileSystem) IsDeviceFile(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsDeviceFile(), err
}

// IsOther reports whether p exists but is not a regular file, directory or
// symlink.
func (fsys *FileSystem) IsOther(p fspath.Path) (bool, error) {
	st, err := fsys.Status(p)
	return st.IsOther(), err
}

// LastWriteTime returns the modification time of p, UnsetTime when p does
// not exist.
func (fsys *FileSystem) LastWriteTime(p fspath.Path) (time.Time, error) {
	st, err := fsys.Status(p)
	return st.Times().Modified, err
}

// Permissions changes the permissions of p. perm may carry AddPerms or
// RemovePerms to merge with the current bits, and ResolveSymlinks to act on
// the target of a symlink; without it a symlink is rejected.
func (fsys *FileSystem) Permissions(p fspath.Path, perm Perms) error {
	st, err := fsys.status(p, perm.Has(ResolveSymlinks))
	if err != nil {
		return err
	}
	if !st.Exists() {
		return errors.New(errors.ErrNotFound, "cannot change permissions").WithPaths(p.String())
	}
	if st.IsSymlink() {
		return errors.New(errors.ErrNotSupported, "cannot change the permissions of a symlink").WithPaths(p.String())
	}
	next, err := perm.apply(st.Perms())
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid permissions").WithPaths(p.String())
	}
	if err := fsys.backend.Chmod(p.Native(), next); err != nil {
		return errors.FromNative(err, "cannot change permissions", p.String())
	}
	logger().Debug().Str("path", p.String()).Stringer("perms", next).Msg("permissions changed")
	return nil
}

// Equivalent reports whether a and b resolve to the same object. A missing
// path is equivalent to nothing.
func (fsys *FileSystem) Equivalent(a, b fspath.Path) (bool, error) {
	sa, err := fsys.Status(a)
	if err != nil {
		return false, err
	}
	sb, err := fsys.Status(b)
	if err != nil {
		return false, err
	}
	if !sa.Exists() || !sb.Exists() {
		return false, nil
	}
	same, err := fsys.backend.SameFile(a.Native(), b.Native())
	if err != nil {
		return false, errors.FromNative(err, "cannot compare files", a.String(), b.String())
	}
	return same, nil
}

// Remove deletes a file or an empty directory. Removing a path that does
// not exist is an error.
func (fsys *FileSystem) Remove(p fspath.Path) error {
	if err := fsys.backend.Remove(p.Native()); err != nil {
		return errors.FromNative(err, "cannot remove", p.String())
	}
	logger().Debug().Str("path", p.String()).Msg("removed")
	return nil
}

func dirPerms(perm Perms) Perms {
	if !perm.Known() {
		return PermsAll
	}
	return perm.Bits()
}

// CreateDirectory creates p. An existing directory is success; an existing
// non-directory or a missing parent is an error.
func (fsys *FileSystem) CreateDirectory(p fspath.Path, perm Perms) error {
	_, err := fsys.createDirectory(p, perm)
	return err
}

func (fsys *FileSystem) createDirectory(p fspath.Path, perm Perms) (bool, error) {
	err := fsys.backend.Mkdir(p.Native(), dirPerms(perm))
	if err == nil {
		logger().Debug().Str("path", p.String()).Msg("directory created")
		return true, nil
	}
	fsErr := errors.FromNative(err, "cannot create directory", p.String())
	if fsErr.Code != errors.ErrAlreadyExists {
		return false, fsErr
	}
	st, serr := fsys.Status(p)
	if serr != nil {
		return false, serr
	}
	if !st.IsDirectory() {
		return false, fsErr
	}
	return false, nil
}

// CreateDirectories creates p and any missing parents. It fails when a
// prefix of p exists as a non-directory.
func (fsys *FileSystem) CreateDirectories(p fspath.Path, perm Perms) error {
	st, err := fsys.Status(p)
	if err != nil {
		return err
	}
	if st.IsDirectory() {
		return nil
	}
	if st.Exists() {
		return errors.New(errors.ErrAlreadyExists, "path exists and is not a directory").WithPaths(p.String())
	}
	if parent := p.ParentPath(); !parent.Empty() && !parent.Equal(p) {
		if err := fsys.CreateDirectories(parent, perm); err != nil {
			return err
		}
	}
	return fsys.CreateDirectory(p, perm)
}

// CreateDirectoryFrom creates p with the permissions of the existing
// directory cloneFrom.
func (fsys *FileSystem) CreateDirectoryFrom(p, cloneFrom fspath.Path) error {
	src, err := fsys.Status(cloneFrom)
	if err != nil {
		return err
	}
	if !src.IsDirectory() {
		return errors.New(errors.ErrNotDirectory, "cannot clone attributes from a non-directory").
			WithPaths(p.String(), cloneFrom.String())
	}
	perm := dirPerms(src.Perms())
	created, err := fsys.createDirectory(p, perm)
	if err != nil || !created || !src.Perms().Known() {
		return err
	}
	// Mkdir is subject to the umask.
	if err := fsys.backend.Chmod(p.Native(), perm); err != nil {
		return errors.FromNative(err, "cannot clone permissions", p.String(), cloneFrom.String())
	}
	return nil
}

// CurrentPath returns the process working directory.
func (fsys *FileSystem) CurrentPath() (fspath.Path, error) {
	wd, err := fsys.backend.Getwd()
	if err != nil {
		return fspath.Path{}, errors.FromNative(err, "cannot get the current directory")
	}
	return fspath.New(wd), nil
}

// SetCurrentPath changes the process working directory.
func (fsys *FileSystem) SetCurrentPath(p fspath.Path) error {
	if err := fsys.backend.Chdir(p.Native()); err != nil {
		return errors.FromNative(err, "cannot change the current directory", p.String())
	}
	return nil
}
