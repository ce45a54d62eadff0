package filesystem

import "github.com/arthur-debert/portfs/pkg/identity"

// Owner is the user and group a file belongs to.
type Owner struct {
	User  identity.Identity
	Group identity.Identity
}

// InvalidOwner is the owner of a status whose owner is unknown.
func InvalidOwner() Owner {
	return Owner{User: identity.InvalidUser(), Group: identity.InvalidGroup()}
}

// ProcessOwner pairs the process user with the invalid group.
func ProcessOwner() Owner {
	return Owner{User: identity.ProcessUser(), Group: identity.InvalidGroup()}
}

// Valid reports whether the user is known.
func (o Owner) Valid() bool { return o.User.Valid() }

func (o Owner) String() string {
	return o.User.String() + " " + o.Group.String()
}
