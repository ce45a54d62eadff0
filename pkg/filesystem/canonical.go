package filesystem

import (
	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/fspath"
)

// maxSymlinkHops bounds symlink expansion during canonical resolution.
const maxSymlinkHops = 255

// Canonical resolves p to an absolute path free of symlinks and of "." and
// ".." components. A leading "~" is replaced by the home directory and a
// relative path is resolved against base, or the current directory when base
// is empty. Only the existing prefix of p is resolved; the rest is appended
// lexically, so p need not exist.
func (fsys *FileSystem) Canonical(p, base fspath.Path) (fspath.Path, error) {
	if p.Empty() {
		return fspath.Path{}, errors.New(errors.ErrInvalidInput, "cannot canonicalize an empty path")
	}
	if rest, ok := p.SplitTilde(); ok {
		home, err := HomeDirectoryPath()
		if err != nil {
			return fspath.Path{}, err
		}
		p = home.JoinPath(rest)
	}
	if !p.IsAbsolute() {
		if base.Empty() || !base.IsAbsolute() {
			cwd, err := fsys.CurrentPath()
			if err != nil {
				return fspath.Path{}, err
			}
			base = cwd.JoinPath(base)
		}
		p = base.JoinPath(p)
	}
	resolved, err := fsys.resolve(p)
	if err != nil {
		return fspath.Path{}, err
	}
	logger().Trace().Str("path", p.String()).Str("canonical", resolved.String()).Msg("canonicalized")
	return resolved, nil
}

// CanonicalCwd is Canonical relative to the current directory.
func (fsys *FileSystem) CanonicalCwd(p fspath.Path) (fspath.Path, error) {
	return fsys.Canonical(p, fspath.Path{})
}

func names(p fspath.Path) []string {
	comps := p.RelativePath().Components()
	out := make([]string, 0, len(comps))
	for _, c := range comps {
		out = append(out, c.String())
	}
	return out
}

// resolve walks the absolute path p one component at a time, expanding
// symlinks as it meets them. Components below a missing one are kept
// lexically in missing; a ".." that climbs back out of them resumes
// resolution.
func (fsys *FileSystem) resolve(p fspath.Path) (fspath.Path, error) {
	resolved := p.RootPath()
	pending := names(p)
	var missing []string
	hops := 0
	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]
		switch {
		case name == ".":
			continue
		case name == ".." && len(missing) > 0:
			missing = missing[:len(missing)-1]
			continue
		case name == "..":
			if !resolved.Equal(resolved.RootPath()) {
				resolved = resolved.ParentPath()
			}
			continue
		case len(missing) > 0:
			missing = append(missing, name)
			continue
		}

		next := resolved.Join(name)
		st, err := fsys.SymlinkStatus(next)
		if err != nil {
			return fspath.Path{}, err
		}
		if !st.Exists() {
			missing = append(missing, name)
			continue
		}
		if !st.IsSymlink() {
			resolved = next
			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return fspath.Path{}, errors.New(errors.ErrSymlinkLoop, "too many levels of symbolic links").WithPaths(p.String(), next.String())
		}
		target, err := fsys.backend.Readlink(next.Native())
		if err != nil {
			return fspath.Path{}, errors.FromNative(err, "cannot read symlink", next.String())
		}
		tp := fspath.New(target)
		if root := tp.RootPath(); !root.Empty() {
			resolved = resolved.RootPath().JoinPath(root)
		}
		pending = append(names(tp), pending...)
	}
	return resolved.Join(missing...), nil
}
