package filesystem

import (
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/portfs/pkg/errors"
)

// osBackend implements Backend with the os package alone. Platform backends
// embed it and override the queries they can answer in more detail.
type osBackend struct{}

func (osBackend) Stat(name string, follow bool) (FileStatus, error) {
	info, err := lstatOrStat(name, follow)
	if err != nil {
		return NewFileStatus(), err
	}
	return statusFromFileInfo(info), nil
}

func lstatOrStat(name string, follow bool) (fs.FileInfo, error) {
	if follow {
		return os.Stat(name)
	}
	return os.Lstat(name)
}

// statusFromFileInfo fills what fs.FileInfo carries portably: type, bits
// and modification time.
func statusFromFileInfo(info fs.FileInfo) FileStatus {
	st := FileStatusOf(FileTypeFromMode(info.Mode()), PermsFromFileMode(info.Mode()))
	st.SetTimes(Times{Modified: info.ModTime()})
	return st
}

func (osBackend) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (osBackend) Mkdir(name string, perm Perms) error {
	return os.Mkdir(name, perm.FileMode())
}

func (osBackend) Chmod(name string, perm Perms) error {
	return os.Chmod(name, perm.FileMode())
}

func (osBackend) Remove(name string) error {
	return os.Remove(name)
}

func (osBackend) OpenDir(name string) (DirHandle, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, errors.New(errors.ErrNotDirectory, "not a directory").WithPaths(name)
	}
	return &osDir{f: f}, nil
}

func (osBackend) Getwd() (string, error) {
	return os.Getwd()
}

func (osBackend) Chdir(name string) error {
	return os.Chdir(name)
}

func (osBackend) SameFile(a, b string) (bool, error) {
	ia, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ia, ib), nil
}

func (osBackend) DeviceID(name string) (uint64, error) {
	return 0, errors.New(errors.ErrNotSupported, "device ids are not available on this platform").WithPaths(name)
}

const dirBatch = 64

type osDir struct {
	f   *os.File
	buf []fs.DirEntry
}

func (d *osDir) Next() (string, FileType, error) {
	if len(d.buf) == 0 {
		entries, err := d.f.ReadDir(dirBatch)
		if len(entries) == 0 {
			if err == nil {
				err = io.EOF
			}
			return "", TypeNone, err
		}
		d.buf = entries
	}
	e := d.buf[0]
	d.buf = d.buf[1:]
	return e.Name(), FileTypeFromMode(e.Type()), nil
}

func (d *osDir) Close() error {
	return d.f.Close()
}
