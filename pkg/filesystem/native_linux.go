//go:build linux

package filesystem

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"github.com/arthur-debert/portfs/pkg/identity"
)

// nativeBackend answers status queries with statx, which also reports the
// birth time where the filesystem records one.
type nativeBackend struct {
	osBackend
}

func newNativeBackend() Backend { return nativeBackend{} }

func (b nativeBackend) Stat(name string, follow bool) (FileStatus, error) {
	flags := unix.AT_STATX_SYNC_AS_STAT
	if !follow {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, name, flags, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if err == unix.ENOSYS {
		return b.osBackend.Stat(name, follow)
	}
	if err != nil {
		return NewFileStatus(), &fs.PathError{Op: "statx", Path: name, Err: err}
	}

	st := FileStatusOf(fileTypeFromUnixMode(uint32(stx.Mode)), Perms(stx.Mode)&PermsMask)
	st.SetOwner(Owner{User: identity.UID(stx.Uid), Group: identity.GID(stx.Gid)})
	times := Times{
		Modified:         statxTime(stx.Mtime),
		MetadataModified: statxTime(stx.Ctime),
		Accessed:         statxTime(stx.Atime),
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		times.Created = statxTime(stx.Btime)
	}
	st.SetTimes(times)
	return st, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}

func (nativeBackend) DeviceID(name string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return uint64(st.Dev), nil
}
