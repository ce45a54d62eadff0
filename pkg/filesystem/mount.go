package filesystem

import (
	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

// mountPather is implemented by backends that can ask the OS for the mount
// point directly.
type mountPather interface {
	MountPath(name string) (string, error)
}

// MountPath returns the mount point of the volume holding p. This may differ
// from p's root path. Without a native answer it is the topmost ancestor of
// p on the same device, so bind mounts of the same device are not seen.
func (fsys *FileSystem) MountPath(p fspath.Path) (fspath.Path, error) {
	cp, err := fsys.CanonicalCwd(p)
	if err != nil {
		return fspath.Path{}, err
	}
	return fsys.mountPath(cp, p)
}

// mountPath is MountPath for an already canonical cp; p is the path the
// caller asked about, used in errors.
func (fsys *FileSystem) mountPath(cp, p fspath.Path) (fspath.Path, error) {
	st, err := fsys.Status(cp)
	if err != nil {
		return fspath.Path{}, err
	}
	if !st.Exists() {
		return fspath.Path{}, errors.New(errors.ErrNotFound, "cannot find the mount point of a missing path").WithPaths(p.String())
	}

	if mp, ok := fsys.backend.(mountPather); ok {
		m, err := mp.MountPath(cp.Native())
		if err != nil {
			return fspath.Path{}, errors.FromNative(err, "cannot find mount point", p.String())
		}
		return fspath.New(m), nil
	}

	dev, err := fsys.backend.DeviceID(cp.Native())
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotSupported) {
			return cp.RootPath(), nil
		}
		return fspath.Path{}, errors.FromNative(err, "cannot find mount point", p.String())
	}
	cur := cp
	for {
		parent := cur.ParentPath()
		if parent.Empty() || parent.Equal(cur) {
			return cur, nil
		}
		pdev, err := fsys.backend.DeviceID(parent.Native())
		if err != nil {
			return fspath.Path{}, errors.FromNative(err, "cannot find mount point", parent.String())
		}
		if pdev != dev {
			return cur, nil
		}
		cur = parent
	}
}

// IsMountpoint reports whether p is the mount point of its volume.
func (fsys *FileSystem) IsMountpoint(p fspath.Path) (bool, error) {
	cp, err := fsys.CanonicalCwd(p)
	if err != nil {
		return false, err
	}
	m, err := fsys.mountPath(cp, p)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return m.Equal(cp), nil
}
