//go:build windows

package identity

import (
	"golang.org/x/sys/windows"
)

// ProcessUser returns the user of the running process's token.
func ProcessUser() Identity {
	tu, err := windows.GetCurrentProcessToken().GetTokenUser()
	if err != nil {
		return InvalidUser()
	}
	return FromSID(tu.User.Sid, KindUser)
}

// ProcessGroup returns the primary group of the running process's token.
func ProcessGroup() Identity {
	pg, err := windows.GetCurrentProcessToken().GetTokenPrimaryGroup()
	if err != nil {
		return InvalidGroup()
	}
	return FromSID(pg.PrimaryGroup, KindGroup)
}

// FromSID wraps a security identifier.
func FromSID(sid *windows.SID, kind Kind) Identity {
	if sid == nil || !sid.IsValid() {
		return Identity{kind: kind}
	}
	return Identity{kind: kind, id: sid.String()}
}
