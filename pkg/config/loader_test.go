package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/filesystem"
)

// isolate points the user config dir at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.False(t, cfg.Iterate.FollowSymlinks)
	assert.True(t, cfg.Iterate.SkipPermissionDenied)
	assert.Equal(t, -1, cfg.Iterate.MaxDepth)
	assert.False(t, cfg.Dirs.Create)
	assert.Equal(t, FormatAuto, cfg.Output.Format)
	assert.True(t, cfg.Watch.Recursive)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUserFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "portfs", "config.toml"), `
[iterate]
follow_symlinks = true
max_depth = 2

[output]
format = "json"
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.Iterate.FollowSymlinks)
	assert.Equal(t, 2, cfg.Iterate.MaxDepth)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	// untouched keys keep their defaults
	assert.True(t, cfg.Iterate.SkipPermissionDenied)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeConfig(t, path, "[dirs]\ncreate = true\n")

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.True(t, cfg.Dirs.Create)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadMalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeConfig(t, path, "[iterate\nmax_depth = ")

	_, err := Load(LoadOptions{File: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "portfs", "config.toml"), "[iterate]\nmax_depth = 2\n")
	t.Setenv("PORTFS_ITERATE_MAX_DEPTH", "5")
	t.Setenv("PORTFS_WATCH_RECURSIVE", "false")
	t.Setenv("PORTFS_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Iterate.MaxDepth)
	assert.False(t, cfg.Watch.Recursive)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

func TestLoadOverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("PORTFS_LOG_VERBOSITY", "1")

	cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
		"log.verbosity": 3,
		"output.format": "toml",
	}})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Log.Verbosity)
	assert.Equal(t, FormatTOML, cfg.Output.Format)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	isolate(t)
	t.Setenv("PORTFS_OUTPUT_FORMAT", "xml")

	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, "output.format", errors.GetErrorDetails(err)["key"])
}

func TestConversions(t *testing.T) {
	it := Iterate{FollowSymlinks: true, SkipPermissionDenied: true}
	assert.Equal(t, filesystem.FollowDirectorySymlink|filesystem.SkipPermissionDenied, it.DirectoryOptions())
	assert.Equal(t, filesystem.DirectoryOptionsNone, Iterate{}.DirectoryOptions())

	assert.Equal(t, filesystem.CreateIfMissing, Dirs{Create: true}.StandardDirectoryOptions())
	assert.Equal(t, filesystem.StandardDirectoryNone, Dirs{}.StandardDirectoryOptions())
}

func TestDefaultContentIsEmbedded(t *testing.T) {
	assert.Contains(t, DefaultContent(), "[iterate]")
}
