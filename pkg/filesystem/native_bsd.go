//go:build darwin || freebsd

package filesystem

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"github.com/arthur-debert/portfs/pkg/identity"
)

type nativeBackend struct {
	osBackend
}

func newNativeBackend() Backend { return nativeBackend{} }

func (nativeBackend) Stat(name string, follow bool) (FileStatus, error) {
	var st unix.Stat_t
	var err error
	if follow {
		err = unix.Stat(name, &st)
	} else {
		err = unix.Lstat(name, &st)
	}
	if err != nil {
		return NewFileStatus(), &fs.PathError{Op: "stat", Path: name, Err: err}
	}

	status := FileStatusOf(fileTypeFromUnixMode(uint32(st.Mode)), Perms(st.Mode)&PermsMask)
	status.SetOwner(Owner{User: identity.UID(st.Uid), Group: identity.GID(st.Gid)})
	status.SetTimes(Times{
		Modified:         timespecTime(st.Mtim),
		MetadataModified: timespecTime(st.Ctim),
		Accessed:         timespecTime(st.Atim),
		Created:          timespecTime(st.Btim),
	})
	return status, nil
}

// timespecTime treats a zero or negative timestamp as unrecorded.
func timespecTime(ts unix.Timespec) time.Time {
	sec, nsec := ts.Unix()
	if sec < 0 || (sec == 0 && nsec == 0) {
		return UnsetTime
	}
	return time.Unix(sec, nsec)
}

func (nativeBackend) DeviceID(name string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return uint64(st.Dev), nil
}
