package filesystem

// FileStatus describes a path: its type, permissions, owner and times. Use
// NewFileStatus for the unqueried value; fields are filled progressively by
// the backend and stay at their defaults when the platform cannot supply them.
type FileStatus struct {
	typ   FileType
	perms Perms
	owner Owner
	times Times
}

// NewFileStatus returns a status of type TypeNone with unknown permissions,
// the invalid owner and unset times.
func NewFileStatus() FileStatus {
	return FileStatusOf(TypeNone, PermsUnknown)
}

// FileStatusOf returns a status with the given type and permissions.
func FileStatusOf(t FileType, p Perms) FileStatus {
	return FileStatus{typ: t, perms: p, owner: InvalidOwner()}
}

func notFoundStatus() FileStatus {
	return FileStatusOf(TypeNotFound, PermsUnknown)
}

// Type is the file type, TypeNone until queried.
func (s FileStatus) Type() FileType { return s.typ }

// Perms is the permission bits, PermsUnknown when the platform has none.
func (s FileStatus) Perms() Perms { return s.perms }

// Owner is the user and group, InvalidOwner when unknown.
func (s FileStatus) Owner() Owner { return s.owner }

// Times holds the timestamps the backend could supply.
func (s FileStatus) Times() Times { return s.times }

// SetType records the file type.
func (s *FileStatus) SetType(t FileType) { s.typ = t }

// SetPerms stores the data bits of p; modifiers are never part of a status.
func (s *FileStatus) SetPerms(p Perms) {
	if p.Known() {
		p = p.Bits()
	}
	s.perms = p
}

// SetOwner records the owner.
func (s *FileStatus) SetOwner(o Owner) { s.owner = o }

// SetTimes records the timestamps.
func (s *FileStatus) SetTimes(t Times) { s.times = t }

// StatusKnown reports whether the status has been queried.
func (s FileStatus) StatusKnown() bool { return s.typ != TypeNone }

// Exists reports whether the path named an existing object.
func (s FileStatus) Exists() bool {
	return s.StatusKnown() && s.typ != TypeNotFound
}

// IsRegularFile reports a regular file.
func (s FileStatus) IsRegularFile() bool { return s.typ == TypeRegular }

// IsDirectory reports a directory.
func (s FileStatus) IsDirectory() bool { return s.typ == TypeDirectory }

// IsSymlink reports a symlink; only a SymlinkStatus can carry one.
func (s FileStatus) IsSymlink() bool { return s.typ == TypeSymlink }

// IsBlockFile reports a block device.
func (s FileStatus) IsBlockFile() bool { return s.typ == TypeBlock }

// IsCharacterFile reports a character device.
func (s FileStatus) IsCharacterFile() bool { return s.typ == TypeCharacter }

// IsFIFO reports a named pipe.
func (s FileStatus) IsFIFO() bool { return s.typ == TypeFIFO }

// IsSocket reports a socket.
func (s FileStatus) IsSocket() bool { return s.typ == TypeSocket }

// IsDeviceFile reports a block or character device.
func (s FileStatus) IsDeviceFile() bool {
	return s.IsBlockFile() || s.IsCharacterFile()
}

// IsOther reports an existing object that is not a regular file, directory
// or symlink.
func (s FileStatus) IsOther() bool {
	return s.Exists() && !s.IsRegularFile() && !s.IsDirectory() && !s.IsSymlink()
}
