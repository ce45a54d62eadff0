// Package identity resolves the user and group identities that own files.
//
// An Identity is an opaque handle: a decimal uid/gid on POSIX systems, a SID
// string on Windows. The invalid identity is a distinguished value, not an
// empty lookup result, and compares equal only to itself.
package identity

import (
	"os/user"

	"github.com/arthur-debert/portfs/pkg/errors"
)

// Kind distinguishes user identities from group identities.
type Kind int

const (
	// KindUser identifies a user account.
	KindUser Kind = iota
	// KindGroup identifies a group.
	KindGroup
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "user"
}

// Identity is a user or group, comparable with ==.
type Identity struct {
	kind Kind
	id   string
}

// InvalidUser returns the sentinel for an unknown user.
func InvalidUser() Identity {
	return Identity{kind: KindUser}
}

// InvalidGroup returns the sentinel for an unknown group.
func InvalidGroup() Identity {
	return Identity{kind: KindGroup}
}

// User returns the user identity for a native id (uid or SID string).
func User(id string) Identity {
	return Identity{kind: KindUser, id: id}
}

// Group returns the group identity for a native id (gid or SID string).
func Group(id string) Identity {
	return Identity{kind: KindGroup, id: id}
}

// Kind reports whether the identity is a user or a group.
func (i Identity) Kind() Kind { return i.kind }

// ID returns the native id, empty for the invalid identity.
func (i Identity) ID() string { return i.id }

// Valid reports whether the identity refers to an account.
func (i Identity) Valid() bool { return i.id != "" }

// String returns the native id or "invalid".
func (i Identity) String() string {
	if !i.Valid() {
		return "invalid " + i.kind.String()
	}
	return i.kind.String() + ":" + i.id
}

// Name resolves the account name.
func (i Identity) Name() (string, error) {
	if !i.Valid() {
		return "", errors.IdentityError(nil, "cannot resolve the name of an invalid "+i.kind.String())
	}
	if i.kind == KindGroup {
		g, err := user.LookupGroupId(i.id)
		if err != nil {
			return "", errors.IdentityError(err, "group lookup failed").WithDetail("id", i.id)
		}
		return g.Name, nil
	}
	u, err := user.LookupId(i.id)
	if err != nil {
		return "", errors.IdentityError(err, "user lookup failed").WithDetail("id", i.id)
	}
	return u.Username, nil
}

// HomeDir returns the home directory recorded for a user identity.
func (i Identity) HomeDir() (string, error) {
	if !i.Valid() || i.kind != KindUser {
		return "", errors.IdentityError(nil, "home directory requires a valid user")
	}
	u, err := user.LookupId(i.id)
	if err != nil {
		return "", errors.IdentityError(err, "user lookup failed").WithDetail("id", i.id)
	}
	if u.HomeDir == "" {
		return "", errors.IdentityError(nil, "user has no home directory").WithDetail("id", i.id)
	}
	return u.HomeDir, nil
}

// LookupUser resolves a user by account name.
func LookupUser(name string) (Identity, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return InvalidUser(), errors.IdentityError(err, "user lookup failed").WithDetail("name", name)
	}
	return User(u.Uid), nil
}

// LookupUserID resolves a user by native id, verifying it exists.
func LookupUserID(id string) (Identity, error) {
	u, err := user.LookupId(id)
	if err != nil {
		return InvalidUser(), errors.IdentityError(err, "user lookup failed").WithDetail("id", id)
	}
	return User(u.Uid), nil
}

// LookupGroup resolves a group by name.
func LookupGroup(name string) (Identity, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return InvalidGroup(), errors.IdentityError(err, "group lookup failed").WithDetail("name", name)
	}
	return Group(g.Gid), nil
}

// LookupGroupID resolves a group by native id, verifying it exists.
func LookupGroupID(id string) (Identity, error) {
	g, err := user.LookupGroupId(id)
	if err != nil {
		return InvalidGroup(), errors.IdentityError(err, "group lookup failed").WithDetail("id", id)
	}
	return Group(g.Gid), nil
}
