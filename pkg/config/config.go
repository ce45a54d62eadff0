package config

import (
	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/filesystem"
)

// Output formats accepted by output.format.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config is the decoded portfs configuration.
type Config struct {
	Log     Log     `koanf:"log" json:"log" yaml:"log" toml:"log"`
	Iterate Iterate `koanf:"iterate" json:"iterate" yaml:"iterate" toml:"iterate"`
	Dirs    Dirs    `koanf:"dirs" json:"dirs" yaml:"dirs" toml:"dirs"`
	Output  Output  `koanf:"output" json:"output" yaml:"output" toml:"output"`
	Watch   Watch   `koanf:"watch" json:"watch" yaml:"watch" toml:"watch"`
}

type Log struct {
	Verbosity int `koanf:"verbosity" json:"verbosity" yaml:"verbosity" toml:"verbosity"`
}

// Iterate holds the defaults for directory listings.
type Iterate struct {
	FollowSymlinks       bool `koanf:"follow_symlinks" json:"follow_symlinks" yaml:"follow_symlinks" toml:"follow_symlinks"`
	SkipPermissionDenied bool `koanf:"skip_permission_denied" json:"skip_permission_denied" yaml:"skip_permission_denied" toml:"skip_permission_denied"`
	// MaxDepth limits recursion; negative means unlimited.
	MaxDepth int `koanf:"max_depth" json:"max_depth" yaml:"max_depth" toml:"max_depth"`
}

type Dirs struct {
	Create bool `koanf:"create" json:"create" yaml:"create" toml:"create"`
}

type Output struct {
	Format string `koanf:"format" json:"format" yaml:"format" toml:"format"`
}

type Watch struct {
	Recursive bool `koanf:"recursive" json:"recursive" yaml:"recursive" toml:"recursive"`
}

// DirectoryOptions converts the iterate section to iterator options.
func (i Iterate) DirectoryOptions() filesystem.DirectoryOptions {
	opts := filesystem.DirectoryOptionsNone
	if i.FollowSymlinks {
		opts |= filesystem.FollowDirectorySymlink
	}
	if i.SkipPermissionDenied {
		opts |= filesystem.SkipPermissionDenied
	}
	return opts
}

// StandardDirectoryOptions converts the dirs section.
func (d Dirs) StandardDirectoryOptions() filesystem.StandardDirectoryOptions {
	if d.Create {
		return filesystem.CreateIfMissing
	}
	return filesystem.StandardDirectoryNone
}

// Validate rejects values the CLI cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON, FormatYAML, FormatTOML:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Log.Verbosity < 0 {
		return errors.New(errors.ErrConfigParse, "verbosity cannot be negative").
			WithDetail("key", "log.verbosity")
	}
	return nil
}
