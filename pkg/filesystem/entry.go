package filesystem

import "github.com/arthur-debert/portfs/pkg/fspath"

// DirectoryEntry is a path that fetches its status on first use and keeps
// it until the path changes. Copies share nothing.
type DirectoryEntry struct {
	fsys *FileSystem
	path fspath.Path

	status        FileStatus
	symlinkStatus FileStatus
	hasStatus     bool
	hasSymlink    bool
}

// NewDirectoryEntry returns an entry for p on the native filesystem.
func NewDirectoryEntry(p fspath.Path) DirectoryEntry {
	return defaultFS.Entry(p)
}

// Entry returns an entry for p.
func (fsys *FileSystem) Entry(p fspath.Path) DirectoryEntry {
	return DirectoryEntry{fsys: fsys, path: p}
}

func (e DirectoryEntry) Path() fspath.Path { return e.path }

func (e DirectoryEntry) String() string { return e.path.String() }

// Assign points the entry at p and drops the cached status.
func (e *DirectoryEntry) Assign(p fspath.Path) {
	e.path = p
	e.invalidate()
}

// ReplaceFilename swaps the last component and drops the cached status.
func (e *DirectoryEntry) ReplaceFilename(name string) {
	e.path = e.path.ReplaceFilename(name)
	e.invalidate()
}

func (e *DirectoryEntry) invalidate() {
	e.hasStatus, e.hasSymlink = false, false
	e.status, e.symlinkStatus = FileStatus{}, FileStatus{}
}

func (e *DirectoryEntry) filesystem() *FileSystem {
	if e.fsys == nil {
		return defaultFS
	}
	return e.fsys
}

// Status returns the cached status, querying it on first use. Failures are
// not cached.
func (e *DirectoryEntry) Status() (FileStatus, error) {
	if e.hasStatus {
		return e.status, nil
	}
	st, err := e.filesystem().Status(e.path)
	if err != nil {
		return st, err
	}
	e.status, e.hasStatus = st, true
	return st, nil
}

// SymlinkStatus is Status for the entry itself rather than a symlink target.
func (e *DirectoryEntry) SymlinkStatus() (FileStatus, error) {
	if e.hasSymlink {
		return e.symlinkStatus, nil
	}
	st, err := e.filesystem().SymlinkStatus(e.path)
	if err != nil {
		return st, err
	}
	e.symlinkStatus, e.hasSymlink = st, true
	return st, nil
}

// Compare orders entries by path.
func (e DirectoryEntry) Compare(o DirectoryEntry) int { return e.path.Compare(o.path) }

func (e DirectoryEntry) Equal(o DirectoryEntry) bool { return e.path.Equal(o.path) }

func (e DirectoryEntry) Less(o DirectoryEntry) bool { return e.path.Less(o.path) }
