package fspath

import "strings"

// style captures the lexical rules of one platform's paths.
type style struct {
	name      string
	separator byte
	// alternate is also accepted as a separator (Windows accepts '/').
	alternate byte
	foldCase  bool
	// drives enables "C:" and UNC root names.
	drives bool
}

var (
	posixStyle   = &style{name: "posix", separator: '/', alternate: '/'}
	windowsStyle = &style{name: "windows", separator: '\\', alternate: '/', foldCase: true, drives: true}
)

func (st *style) isSep(c byte) bool {
	return c == st.separator || c == st.alternate
}

// volumeLen returns the length of the root name ("C:" or "\\server\share").
func (st *style) volumeLen(s string) int {
	if !st.drives || len(s) < 2 {
		return 0
	}
	if s[1] == ':' && isLetter(s[0]) {
		return 2
	}
	if st.isSep(s[0]) && st.isSep(s[1]) && (len(s) == 2 || !st.isSep(s[2])) {
		// UNC: \\server\share
		n := 2
		for n < len(s) && !st.isSep(s[n]) {
			n++
		}
		if n < len(s) {
			n++
			for n < len(s) && !st.isSep(s[n]) {
				n++
			}
		}
		return n
	}
	return 0
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// rootEnd returns the index just past the root name and root directory.
func (st *style) rootEnd(s string) int {
	n := st.volumeLen(s)
	for n < len(s) && st.isSep(s[n]) {
		n++
	}
	return n
}

func (st *style) rootName(s string) string {
	return s[:st.volumeLen(s)]
}

func (st *style) rootDirectory(s string) string {
	v := st.volumeLen(s)
	if v < len(s) && st.isSep(s[v]) {
		return string(st.separator)
	}
	return ""
}

func (st *style) isAbsolute(s string) bool {
	if st.drives {
		v := st.volumeLen(s)
		if v > 2 {
			return true // UNC
		}
		return v == 2 && v < len(s) && st.isSep(s[v])
	}
	return len(s) > 0 && st.isSep(s[0])
}

// filenameStart returns the index where the final component begins.
func (st *style) filenameStart(s string) int {
	root := st.rootEnd(s)
	i := len(s)
	for i > root && !st.isSep(s[i-1]) {
		i--
	}
	return i
}

func (st *style) filename(s string) string {
	return s[st.filenameStart(s):]
}

func (st *style) parentPath(s string) string {
	root := st.rootEnd(s)
	if root == len(s) {
		return s
	}
	i := st.filenameStart(s)
	for i > root && st.isSep(s[i-1]) {
		i--
	}
	return s[:i]
}

func (st *style) removeFilename(s string) string {
	return s[:st.filenameStart(s)]
}

func (st *style) join(lhs, rhs string) string {
	switch {
	case rhs == "":
		return lhs
	case lhs == "":
		return rhs
	case st.isAbsolute(rhs):
		return rhs
	}
	if st.drives && st.volumeLen(rhs) == 0 && st.isSep(rhs[0]) {
		// rooted without a drive keeps the left-hand root name
		return st.rootName(lhs) + rhs
	}
	rhs = strings.TrimLeft(rhs, string([]byte{st.separator, st.alternate}))
	if st.isSep(lhs[len(lhs)-1]) || (st.drives && st.volumeLen(lhs) == len(lhs) && len(lhs) == 2) {
		return lhs + rhs
	}
	return lhs + string(st.separator) + rhs
}

func (st *style) makePreferred(s string) string {
	if st.alternate == st.separator {
		return s
	}
	return strings.ReplaceAll(s, string(st.alternate), string(st.separator))
}

// elements splits the relative part into non-empty components.
func (st *style) elements(s string) []string {
	rel := s[st.rootEnd(s):]
	return strings.FieldsFunc(rel, func(r rune) bool {
		return r < 0x80 && st.isSep(byte(r))
	})
}

// fold returns the form used for hashing.
func (st *style) fold(s string) string {
	if st.foldCase {
		return strings.ToUpper(s)
	}
	return s
}

// compare orders paths code unit by code unit with separators normalized
// and sorted before every other unit.
func (st *style) compare(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := st.unit(a[i]), st.unit(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func (st *style) unit(c byte) int {
	if st.isSep(c) {
		return -1
	}
	if st.foldCase && 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	return int(c)
}

func (st *style) lexicallyNormal(s string) string {
	if s == "" {
		return ""
	}
	root := st.makePreferred(st.rootName(s)) + st.rootDirectory(s)
	rooted := st.rootDirectory(s) != ""
	var out []string
	for _, e := range st.elements(s) {
		switch e {
		case ".":
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if !rooted {
				out = append(out, e)
			}
		default:
			out = append(out, e)
		}
	}
	rel := strings.Join(out, string(st.separator))
	if root == "" && rel == "" {
		return "."
	}
	return root + rel
}
