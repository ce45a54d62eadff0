//go:build unix

package filesystem

import "golang.org/x/sys/unix"

func fileTypeFromUnixMode(m uint32) FileType {
	switch m & unix.S_IFMT {
	case unix.S_IFREG:
		return TypeRegular
	case unix.S_IFDIR:
		return TypeDirectory
	case unix.S_IFLNK:
		return TypeSymlink
	case unix.S_IFBLK:
		return TypeBlock
	case unix.S_IFCHR:
		return TypeCharacter
	case unix.S_IFIFO:
		return TypeFIFO
	case unix.S_IFSOCK:
		return TypeSocket
	default:
		return TypeUnknown
	}
}
