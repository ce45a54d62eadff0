package filesystem

import (
	"os"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/fspath"
	"github.com/arthur-debert/portfs/pkg/identity"
)

// Domain selects whose standard directory is resolved.
type Domain int

const (
	DomainUser Domain = iota
	// DomainUserLocal is local to the machine on Windows and the same as
	// DomainUser elsewhere.
	DomainUserLocal
	DomainShared
)

func (d Domain) String() string {
	switch d {
	case DomainUserLocal:
		return "user_local"
	case DomainShared:
		return "shared"
	default:
		return "user"
	}
}

// DirectoryKind names a well known directory.
type DirectoryKind int

const (
	AppData DirectoryKind = iota
	Cache
)

func (k DirectoryKind) String() string {
	if k == Cache {
		return "cache"
	}
	return "app_data"
}

// StandardDirectoryOptions controls StandardDirectoryPath.
type StandardDirectoryOptions uint8

const (
	StandardDirectoryNone StandardDirectoryOptions = 0
	// CreateIfMissing creates the directory and its parents when missing.
	CreateIfMissing StandardDirectoryOptions = 1
)

// HomeDirectoryPath returns the home directory of the process user.
func HomeDirectoryPath() (fspath.Path, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return fspath.New(home), nil
	}
	return HomeDirectoryPathFor(identity.ProcessUser())
}

// HomeDirectoryPathFor returns the home directory recorded for user.
func HomeDirectoryPathFor(user identity.Identity) (fspath.Path, error) {
	if !user.Valid() {
		return fspath.Path{}, errors.IdentityError(nil, "cannot resolve the home directory of an invalid user")
	}
	if err := checkHomeIdentity(user); err != nil {
		return fspath.Path{}, err
	}
	home, err := user.HomeDir()
	if err != nil {
		return fspath.Path{}, err
	}
	return fspath.New(home), nil
}

// StandardDirectoryPath resolves kind for domain, creating it when opts
// carries CreateIfMissing.
func (fsys *FileSystem) StandardDirectoryPath(domain Domain, kind DirectoryKind, opts StandardDirectoryOptions) (fspath.Path, error) {
	dir, err := standardDirectory(domain, kind)
	if err != nil {
		return fspath.Path{}, errors.Wrapf(err, errors.GetErrorCode(err), "cannot resolve the %s %s directory", domain, kind)
	}
	p := fspath.New(dir)
	if opts&CreateIfMissing != 0 {
		if err := fsys.CreateDirectories(p, PermsAll); err != nil {
			return fspath.Path{}, err
		}
	}
	return p, nil
}

// StandardDirectory resolves kind in the user domain, creating it.
func (fsys *FileSystem) StandardDirectory(kind DirectoryKind) (fspath.Path, error) {
	return fsys.StandardDirectoryPath(DomainUser, kind, CreateIfMissing)
}

// CacheDirectoryPath resolves the machine local user cache, creating it.
func (fsys *FileSystem) CacheDirectoryPath() (fspath.Path, error) {
	return fsys.StandardDirectoryPath(DomainUserLocal, Cache, CreateIfMissing)
}

// TempDirectoryPath returns the directory for temporary files. TMPDIR is
// honored on POSIX systems.
func (fsys *FileSystem) TempDirectoryPath() (fspath.Path, error) {
	p := fspath.New(os.TempDir())
	st, err := fsys.Status(p)
	if err != nil {
		return fspath.Path{}, err
	}
	if !st.IsDirectory() {
		return fspath.Path{}, errors.New(errors.ErrNotDirectory, "temporary directory is not a directory").WithPaths(p.String())
	}
	return p, nil
}
