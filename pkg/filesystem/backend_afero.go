package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/spf13/afero"

	"github.com/arthur-debert/portfs/pkg/errors"
)

// aferoBackend implements Backend over an afero.Fs. Names use forward slashes
// and are resolved against a working directory of its own, starting at "/".
// Symlinks are reported only when the Fs implements afero.Lstater and
// afero.LinkReader.
type aferoBackend struct {
	fs afero.Fs

	mu  sync.Mutex
	cwd string
}

// NewAferoBackend wraps fsys.
func NewAferoBackend(fsys afero.Fs) Backend {
	return &aferoBackend{fs: fsys, cwd: "/"}
}

func (a *aferoBackend) abs(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return path.Join(a.cwd, name)
}

func (a *aferoBackend) stat(name string, follow bool) (fs.FileInfo, error) {
	if !follow {
		if l, ok := a.fs.(afero.Lstater); ok {
			info, _, err := l.LstatIfPossible(name)
			return info, err
		}
	}
	return a.fs.Stat(name)
}

func (a *aferoBackend) Stat(name string, follow bool) (FileStatus, error) {
	info, err := a.stat(a.abs(name), follow)
	if err != nil {
		return NewFileStatus(), err
	}
	return statusFromFileInfo(info), nil
}

func (a *aferoBackend) Readlink(name string) (string, error) {
	if r, ok := a.fs.(afero.LinkReader); ok {
		return r.ReadlinkIfPossible(a.abs(name))
	}
	return "", &fs.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

// Mkdir checks the parent itself because MemMapFs creates missing parents.
func (a *aferoBackend) Mkdir(name string, perm Perms) error {
	name = a.abs(name)
	if parent := path.Dir(name); parent != name {
		info, err := a.fs.Stat(parent)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return errors.New(errors.ErrNotDirectory, "parent is not a directory").WithPaths(parent)
		}
	}
	return a.fs.Mkdir(name, perm.FileMode())
}

func (a *aferoBackend) Chmod(name string, perm Perms) error {
	return a.fs.Chmod(a.abs(name), perm.FileMode())
}

// Remove refuses non-empty directories, which MemMapFs would delete.
func (a *aferoBackend) Remove(name string) error {
	name = a.abs(name)
	info, err := a.stat(name, false)
	if err != nil {
		return err
	}
	if info.IsDir() {
		empty, err := afero.IsEmpty(a.fs, name)
		if err != nil {
			return err
		}
		if !empty {
			return errors.New(errors.ErrNotEmpty, "directory not empty").WithPaths(name)
		}
	}
	return a.fs.Remove(name)
}

func (a *aferoBackend) OpenDir(name string) (DirHandle, error) {
	name = a.abs(name)
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrNotDirectory, "not a directory").WithPaths(name)
	}
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &aferoDir{f: f}, nil
}

func (a *aferoBackend) Getwd() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cwd, nil
}

func (a *aferoBackend) Chdir(name string) error {
	name = a.abs(name)
	info, err := a.fs.Stat(name)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New(errors.ErrNotDirectory, "not a directory").WithPaths(name)
	}
	a.mu.Lock()
	a.cwd = name
	a.mu.Unlock()
	return nil
}

// SameFile compares resolved names: an afero Fs has no hard links.
func (a *aferoBackend) SameFile(x, y string) (bool, error) {
	x, y = a.abs(x), a.abs(y)
	if _, err := a.fs.Stat(x); err != nil {
		return false, err
	}
	if _, err := a.fs.Stat(y); err != nil {
		return false, err
	}
	return x == y, nil
}

// DeviceID reports a single volume.
func (a *aferoBackend) DeviceID(name string) (uint64, error) {
	if _, err := a.fs.Stat(a.abs(name)); err != nil {
		return 0, err
	}
	return 0, nil
}

type aferoDir struct {
	f   afero.File
	buf []os.FileInfo
}

func (d *aferoDir) Next() (string, FileType, error) {
	if len(d.buf) == 0 {
		infos, err := d.f.Readdir(dirBatch)
		if len(infos) == 0 {
			if err == nil {
				err = io.EOF
			}
			return "", TypeNone, err
		}
		d.buf = infos
	}
	info := d.buf[0]
	d.buf = d.buf[1:]
	return info.Name(), FileTypeFromMode(info.Mode()), nil
}

func (d *aferoDir) Close() error {
	return d.f.Close()
}
