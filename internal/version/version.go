package version

import "runtime"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/portfs/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/portfs/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/portfs/internal/version.Date={{.Date}}
)

// Info is the build information as one record.
type Info struct {
	Version  string `json:"version" yaml:"version" toml:"version"`
	Commit   string `json:"commit" yaml:"commit" toml:"commit"`
	Date     string `json:"date" yaml:"date" toml:"date"`
	Platform string `json:"platform" yaml:"platform" toml:"platform"`
}

func Get() Info {
	return Info{
		Version:  Version,
		Commit:   Commit,
		Date:     Date,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}
