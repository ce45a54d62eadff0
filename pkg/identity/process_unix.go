//go:build unix

package identity

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// ProcessUser returns the effective user of the running process.
func ProcessUser() Identity {
	return User(strconv.Itoa(unix.Geteuid()))
}

// ProcessGroup returns the effective group of the running process.
func ProcessGroup() Identity {
	return Group(strconv.Itoa(unix.Getegid()))
}

// UID returns the user identity for a numeric uid.
func UID(uid uint32) Identity {
	return User(strconv.FormatUint(uint64(uid), 10))
}

// GID returns the group identity for a numeric gid.
func GID(gid uint32) Identity {
	return Group(strconv.FormatUint(uint64(gid), 10))
}
