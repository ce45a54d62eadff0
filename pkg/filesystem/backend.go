package filesystem

// Backend performs the native calls behind every operation. Methods return
// the raw error of the underlying call; the caller converts it, so the native
// code recorded is always the one that call produced.
type Backend interface {
	// Stat queries name, following a terminal symlink when follow is set.
	Stat(name string, follow bool) (FileStatus, error)
	Readlink(name string) (string, error)
	Mkdir(name string, perm Perms) error
	// Chmod replaces the data bits of name, following symlinks.
	Chmod(name string, perm Perms) error
	// Remove deletes a file or an empty directory.
	Remove(name string) error
	OpenDir(name string) (DirHandle, error)
	Getwd() (string, error)
	Chdir(name string) error
	// SameFile reports whether both names resolve to the same object.
	SameFile(a, b string) (bool, error)
	// DeviceID identifies the volume name lives on.
	DeviceID(name string) (uint64, error)
}

// DirHandle is an open directory stream. Next returns io.EOF after the last
// entry; the dot entries are never returned.
type DirHandle interface {
	Next() (name string, typ FileType, err error)
	Close() error
}

// ownedDir closes its handle exactly once, whichever of end of stream or an
// explicit Close comes first.
type ownedDir struct {
	h DirHandle
}

func (d *ownedDir) next() (string, FileType, error) {
	return d.h.Next()
}

func (d *ownedDir) close() error {
	if d.h == nil {
		return nil
	}
	h := d.h
	d.h = nil
	return h.Close()
}
