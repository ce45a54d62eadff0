package fspath

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Separator is the preferred separator of the build platform.
var Separator = native.separator

// Tilde is the component expanded to the home directory by canonical
// resolution.
const Tilde = "~"

// Path is a platform-native filesystem location. It may be relative and
// need not exist. The zero value is the empty path.
//
// Use Equal or Compare rather than == : two Path values that differ only in
// separator spelling or (on Windows) letter case are equal.
type Path struct {
	s string
}

// New creates a Path from a native string.
func New(s string) Path {
	return Path{s: s}
}

// FromSlash creates a Path from a '/'-separated string, converting the
// separators to the native one.
func FromSlash(s string) Path {
	return Path{s: strings.ReplaceAll(s, "/", string(native.separator))}
}

// String returns the native string.
func (p Path) String() string { return p.s }

// Native returns the native string.
func (p Path) Native() string { return p.s }

// Slash returns the path with every separator rewritten to '/'.
func (p Path) Slash() string {
	if native.separator == '/' {
		return p.s
	}
	return strings.ReplaceAll(p.s, string(native.separator), "/")
}

// Empty reports whether the path has no characters.
func (p Path) Empty() bool { return p.s == "" }

// Join appends each element with exactly one separator between them. An
// empty element adds nothing and an absolute element replaces the path.
func (p Path) Join(elems ...string) Path {
	s := p.s
	for _, e := range elems {
		s = native.join(s, e)
	}
	return Path{s: s}
}

// JoinPath is Join for a Path argument.
func (p Path) JoinPath(q Path) Path {
	return Path{s: native.join(p.s, q.s)}
}

// Concat appends s without inserting a separator.
func (p Path) Concat(s string) Path {
	return Path{s: p.s + s}
}

// ParentPath returns the path without its final component. The parent of a
// root path is the root itself.
func (p Path) ParentPath() Path {
	return Path{s: native.parentPath(p.s)}
}

// Filename returns the final component, empty when the path ends in a
// separator or is a root.
func (p Path) Filename() Path {
	return Path{s: native.filename(p.s)}
}

// Stem returns the filename without its extension.
func (p Path) Stem() Path {
	name := native.filename(p.s)
	if i := extensionIndex(name); i >= 0 {
		return Path{s: name[:i]}
	}
	return Path{s: name}
}

// Extension returns the filename's extension including the dot.
func (p Path) Extension() Path {
	name := native.filename(p.s)
	if i := extensionIndex(name); i >= 0 {
		return Path{s: name[i:]}
	}
	return Path{}
}

func extensionIndex(name string) int {
	if name == "." || name == ".." {
		return -1
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return -1
	}
	return i
}

// RemoveFilename drops the final component and keeps the separator before it.
func (p Path) RemoveFilename() Path {
	return Path{s: native.removeFilename(p.s)}
}

// ReplaceFilename replaces the final component.
func (p Path) ReplaceFilename(name string) Path {
	return Path{s: native.join(native.removeFilename(p.s), name)}
}

// ReplaceExtension replaces the extension; ext may omit the leading dot.
func (p Path) ReplaceExtension(ext string) Path {
	s := p.s
	if old := p.Extension(); !old.Empty() {
		s = s[:len(s)-len(old.s)]
	}
	if ext != "" && ext[0] != '.' {
		s += "."
	}
	return Path{s: s + ext}
}

// MakePreferred rewrites every separator to the native one. It does not
// resolve "." or "..".
func (p Path) MakePreferred() Path {
	return Path{s: native.makePreferred(p.s)}
}

// IsAbsolute reports whether the path identifies a location without
// reference to the current directory.
func (p Path) IsAbsolute() bool { return native.isAbsolute(p.s) }

// IsRelative is the negation of IsAbsolute.
func (p Path) IsRelative() bool { return !p.IsAbsolute() }

// HasRootName reports whether the path starts with a drive or UNC share.
func (p Path) HasRootName() bool { return native.volumeLen(p.s) > 0 }

// RootName returns the drive or UNC share, empty on POSIX.
func (p Path) RootName() Path { return Path{s: native.rootName(p.s)} }

// RootDirectory returns the separator that follows the root name, if any.
func (p Path) RootDirectory() Path { return Path{s: native.rootDirectory(p.s)} }

// RootPath is RootName followed by RootDirectory.
func (p Path) RootPath() Path {
	return Path{s: native.rootName(p.s) + native.rootDirectory(p.s)}
}

// RelativePath returns the path after its root.
func (p Path) RelativePath() Path {
	return Path{s: p.s[native.rootEnd(p.s):]}
}

// HasRelativePath reports whether anything follows the root.
func (p Path) HasRelativePath() bool {
	return native.rootEnd(p.s) < len(p.s)
}

// Components returns the root name, the root directory and each non-empty
// element in order.
func (p Path) Components() []Path {
	var out []Path
	if rn := native.rootName(p.s); rn != "" {
		out = append(out, Path{s: rn})
	}
	if rd := native.rootDirectory(p.s); rd != "" {
		out = append(out, Path{s: rd})
	}
	for _, e := range native.elements(p.s) {
		out = append(out, Path{s: e})
	}
	return out
}

// LexicallyNormal removes "." components and folds ".." into the preceding
// component without touching the filesystem.
func (p Path) LexicallyNormal() Path {
	return Path{s: native.lexicallyNormal(p.s)}
}

// SplitTilde reports whether the first component is the literal "~" and
// returns the remainder relative to it.
func (p Path) SplitTilde() (Path, bool) {
	s := p.s
	if s == Tilde {
		return Path{}, true
	}
	if len(s) > 1 && s[0] == '~' && native.isSep(s[1]) {
		return Path{s: strings.TrimLeft(s[1:], string([]byte{native.separator, native.alternate}))}, true
	}
	return p, false
}

// Compare orders paths lexicographically over native code units with
// separators normalized (and case folded on Windows).
func (p Path) Compare(q Path) int { return native.compare(p.s, q.s) }

// Equal reports whether Compare returns 0.
func (p Path) Equal(q Path) bool { return p.Compare(q) == 0 }

// Less reports whether p sorts before q.
func (p Path) Less(q Path) bool { return p.Compare(q) < 0 }

// Hash returns a hash of the native string. On Windows the string is case
// folded first. Separators are not normalized, so paths that are Equal but
// spelled with different separators hash differently unless MakePreferred
// is applied first.
func (p Path) Hash() uint64 {
	return xxhash.Sum64String(native.fold(p.s))
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(b []byte) error {
	p.s = string(b)
	return nil
}
