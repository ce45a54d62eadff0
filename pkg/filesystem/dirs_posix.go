//go:build !windows

package filesystem

import (
	"runtime"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/identity"
)

func checkHomeIdentity(identity.Identity) error { return nil }

func sharedCacheHome() string {
	if runtime.GOOS == "darwin" {
		return "/Library/Caches"
	}
	return "/var/cache"
}

func standardDirectory(domain Domain, kind DirectoryKind) (string, error) {
	switch {
	case domain == DomainShared && kind == AppData:
		if len(xdg.DataDirs) == 0 {
			return "", errors.New(errors.ErrNotFound, "no shared data directory configured")
		}
		return xdg.DataDirs[0], nil
	case domain == DomainShared:
		return sharedCacheHome(), nil
	case kind == AppData:
		return xdg.DataHome, nil
	default:
		return xdg.CacheHome, nil
	}
}
