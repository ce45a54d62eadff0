//go:build windows

package filesystem

import (
	"io/fs"
	"syscall"
	"time"

	"golang.org/x/sys/windows"

	"github.com/arthur-debert/portfs/pkg/identity"
)

// nativeBackend reports attribute times and the owner SIDs. Windows has no
// POSIX permission bits, so statuses carry PermsUnknown.
type nativeBackend struct {
	osBackend
}

func newNativeBackend() Backend { return nativeBackend{} }

func (nativeBackend) Stat(name string, follow bool) (FileStatus, error) {
	info, err := lstatOrStat(name, follow)
	if err != nil {
		return NewFileStatus(), err
	}
	st := FileStatusOf(FileTypeFromMode(info.Mode()), PermsUnknown)
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		st.SetTimes(Times{
			Modified: filetimeTime(d.LastWriteTime),
			Accessed: filetimeTime(d.LastAccessTime),
			Created:  filetimeTime(d.CreationTime),
		})
	} else {
		st.SetTimes(Times{Modified: info.ModTime()})
	}
	st.SetOwner(ownerOf(name))
	return st, nil
}

func filetimeTime(ft syscall.Filetime) time.Time {
	if ft.HighDateTime == 0 && ft.LowDateTime == 0 {
		return UnsetTime
	}
	return time.Unix(0, ft.Nanoseconds())
}

// ownerOf is best effort: an unreadable security descriptor leaves the
// owner invalid.
func ownerOf(name string) Owner {
	o := InvalidOwner()
	sd, err := windows.GetNamedSecurityInfo(name, windows.SE_FILE_OBJECT,
		windows.OWNER_SECURITY_INFORMATION|windows.GROUP_SECURITY_INFORMATION)
	if err != nil {
		return o
	}
	if sid, _, err := sd.Owner(); err == nil {
		o.User = identity.FromSID(sid, identity.KindUser)
	}
	if sid, _, err := sd.Group(); err == nil {
		o.Group = identity.FromSID(sid, identity.KindGroup)
	}
	return o
}

func volumePath(name string) ([]uint16, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	buf := make([]uint16, windows.MAX_LONG_PATH)
	if err := windows.GetVolumePathName(p, &buf[0], uint32(len(buf))); err != nil {
		return nil, &fs.PathError{Op: "GetVolumePathName", Path: name, Err: err}
	}
	return buf, nil
}

func (nativeBackend) DeviceID(name string) (uint64, error) {
	root, err := volumePath(name)
	if err != nil {
		return 0, err
	}
	var serial uint32
	if err := windows.GetVolumeInformation(&root[0], nil, 0, &serial, nil, nil, nil, 0); err != nil {
		return 0, &fs.PathError{Op: "GetVolumeInformation", Path: name, Err: err}
	}
	return uint64(serial), nil
}

// MountPath returns the volume mount point containing name.
func (nativeBackend) MountPath(name string) (string, error) {
	root, err := volumePath(name)
	if err != nil {
		return "", err
	}
	return windows.UTF16ToString(root), nil
}
