//go:build !unix && !windows

package identity

// ProcessUser returns the invalid user: this platform has no user accounts.
func ProcessUser() Identity {
	return InvalidUser()
}

// ProcessGroup returns the invalid group.
func ProcessGroup() Identity {
	return InvalidGroup()
}
