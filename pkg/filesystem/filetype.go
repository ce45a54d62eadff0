package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/portfs/pkg/errors"
)

// FileType is the kind of object a path refers to.
type FileType int

const (
	// TypeNone means the status has not been queried.
	TypeNone FileType = iota
	// TypeNotFound means the path does not exist.
	TypeNotFound
	TypeRegular
	TypeDirectory
	TypeSymlink
	TypeBlock
	TypeCharacter
	TypeFIFO
	TypeSocket
	// TypeUnknown means the object exists but its type could not be determined.
	TypeUnknown
)

var fileTypeNames = [...]string{
	TypeNone:      "none",
	TypeNotFound:  "not_found",
	TypeRegular:   "regular",
	TypeDirectory: "directory",
	TypeSymlink:   "symlink",
	TypeBlock:     "block",
	TypeCharacter: "character",
	TypeFIFO:      "fifo",
	TypeSocket:    "socket",
	TypeUnknown:   "unknown",
}

func (t FileType) String() string {
	if t < 0 || int(t) >= len(fileTypeNames) {
		return "unknown"
	}
	return fileTypeNames[t]
}

// MarshalText renders the type by name for structured output.
func (t FileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a name produced by MarshalText.
func (t *FileType) UnmarshalText(text []byte) error {
	for i, name := range fileTypeNames {
		if name == string(text) {
			*t = FileType(i)
			return nil
		}
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown file type %q", text)
}

// FileTypeFromMode maps the type bits of an fs.FileMode.
func FileTypeFromMode(m fs.FileMode) FileType {
	switch {
	case m.IsRegular():
		return TypeRegular
	case m&fs.ModeDir != 0:
		return TypeDirectory
	case m&fs.ModeSymlink != 0:
		return TypeSymlink
	case m&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case m&fs.ModeSocket != 0:
		return TypeSocket
	case m&fs.ModeCharDevice != 0:
		return TypeCharacter
	case m&fs.ModeDevice != 0:
		return TypeBlock
	default:
		return TypeUnknown
	}
}
