package filesystem

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/portfs/pkg/logging"
)

// FileSystem runs every operation against one Backend.
type FileSystem struct {
	backend Backend
}

// New returns a FileSystem over b.
func New(b Backend) *FileSystem {
	return &FileSystem{backend: b}
}

// NewNative returns a FileSystem over the platform's native backend.
func NewNative() *FileSystem {
	return New(newNativeBackend())
}

// NewMemory returns a FileSystem over an afero filesystem, typically
// afero.NewMemMapFs().
func NewMemory(fsys afero.Fs) *FileSystem {
	return New(NewAferoBackend(fsys))
}

// Backend returns the backend operations run against.
func (fsys *FileSystem) Backend() Backend {
	return fsys.backend
}

var defaultFS = NewNative()

// Default returns the native FileSystem used by the package level functions.
func Default() *FileSystem {
	return defaultFS
}

// logger is looked up per call so it follows SetupLogger.
func logger() *zerolog.Logger {
	l := logging.GetLogger("filesystem")
	return &l
}
