//go:build windows

package filesystem

import (
	"golang.org/x/sys/windows"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/identity"
)

// checkHomeIdentity rejects other users: Windows only resolves the profile
// of the process user.
func checkHomeIdentity(user identity.Identity) error {
	if user != identity.ProcessUser() {
		return errors.New(errors.ErrNotSupported, "home directories of other users are not supported").
			WithDetail("user", user.String())
	}
	return nil
}

func knownFolder(domain Domain, kind DirectoryKind) *windows.KNOWNFOLDERID {
	switch {
	case domain == DomainShared:
		return windows.FOLDERID_ProgramData
	case domain == DomainUser && kind == AppData:
		return windows.FOLDERID_RoamingAppData
	default:
		return windows.FOLDERID_LocalAppData
	}
}

func standardDirectory(domain Domain, kind DirectoryKind) (string, error) {
	dir, err := windows.KnownFolderPath(knownFolder(domain, kind), windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", errors.FromNative(err, "known folder lookup failed")
	}
	return dir, nil
}
