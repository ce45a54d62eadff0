//go:build !windows

package portfs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/watch"
)

// isolate keeps config and log files inside the test's temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func runJSON(t *testing.T, v interface{}, args ...string) {
	t.Helper()
	out, err := run(t, append([]string{"--format", "json"}, args...)...)
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestNoCommand(t *testing.T) {
	isolate(t)
	_, err := run(t)
	assert.Error(t, err)
}

func TestStatCmd(t *testing.T) {
	isolate(t)
	dir := tempDir(t)
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o640))
	require.NoError(t, os.Chmod(file, 0o640))

	var res map[string]interface{}
	runJSON(t, &res, "stat", file)
	assert.Equal(t, "regular", res["type"])
	assert.Equal(t, "rw-r-----", res["perms"])
	assert.Equal(t, "0640", res["mode"])
	assert.NotEmpty(t, res["modified"])

	var missing map[string]interface{}
	runJSON(t, &missing, "stat", filepath.Join(dir, "missing"))
	assert.Equal(t, "not_found", missing["type"])
	assert.NotContains(t, missing, "perms")
}

func TestStatNoFollow(t *testing.T) {
	isolate(t)
	dir := tempDir(t)
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(dir, link))

	var followed, unfollowed map[string]interface{}
	runJSON(t, &followed, "stat", link)
	runJSON(t, &unfollowed, "stat", "-P", link)
	assert.Equal(t, "directory", followed["type"])
	assert.Equal(t, "symlink", unfollowed["type"])
}

func TestCanonicalCmd(t *testing.T) {
	isolate(t)
	dir := tempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))

	var res pathResult
	runJSON(t, &res, "canonical", "--base", dir, "a/../a/./b")
	assert.Equal(t, filepath.Join(dir, "a", "b"), res.Path)
}

func TestLsCmd(t *testing.T) {
	isolate(t)
	dir := tempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deeper"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deeper", "f"), nil, 0o644))

	var flat listResult
	runJSON(t, &flat, "ls", dir)
	require.Len(t, flat.Entries, 1)
	assert.Equal(t, filesystem.TypeDirectory, flat.Entries[0].Type)

	var all listResult
	runJSON(t, &all, "ls", "-a", dir)
	assert.Len(t, all.Entries, 3)

	var deep listResult
	runJSON(t, &deep, "ls", "-r", dir)
	assert.Len(t, deep.Entries, 3)

	var limited listResult
	runJSON(t, &limited, "ls", "-r", "--depth", "1", dir)
	assert.Len(t, limited.Entries, 2)
	for _, e := range limited.Entries {
		assert.LessOrEqual(t, e.Depth, 1)
	}
}

func TestLsNotADirectory(t *testing.T) {
	isolate(t)
	file := filepath.Join(tempDir(t), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := run(t, "ls", file)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotDirectory))
}

func TestMkdirRmCmds(t *testing.T) {
	isolate(t)
	dir := tempDir(t)
	target := filepath.Join(dir, "x", "y")

	_, err := run(t, "mkdir", target)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var created changeResult
	runJSON(t, &created, "mkdir", "-p", target)
	assert.True(t, created.Changed)
	assert.DirExists(t, target)

	var again changeResult
	runJSON(t, &again, "mkdir", target)
	assert.False(t, again.Changed)

	var removed changeResult
	runJSON(t, &removed, "rm", target)
	assert.True(t, removed.Changed)
	assert.NoDirExists(t, target)

	_, err = run(t, "rm", target)
	assert.Error(t, err)
}

func TestMkdirFrom(t *testing.T) {
	isolate(t)
	dir := tempDir(t)
	src := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(src, 0o700))
	require.NoError(t, os.Chmod(src, 0o711))

	dst := filepath.Join(dir, "dst")
	_, err := run(t, "mkdir", "--from", src, dst)
	require.NoError(t, err)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o711), info.Mode().Perm())
}

func TestChmodCmd(t *testing.T) {
	isolate(t)
	file := filepath.Join(tempDir(t), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	require.NoError(t, os.Chmod(file, 0o600))

	var res changeResult
	runJSON(t, &res, "chmod", "+044", file)
	assert.Equal(t, "rw-r--r--", res.Perms)

	runJSON(t, &res, "chmod", "--", "-004", file)
	assert.Equal(t, "rw-r-----", res.Perms)

	// without -- a removing mode reads as shorthand flags
	_, err := run(t, "chmod", "-040", file)
	assert.Error(t, err)
	runJSON(t, &res, "chmod", "-P", "--", "-040", file)
	assert.Equal(t, "rw-------", res.Perms)

	runJSON(t, &res, "chmod", "700", file)
	assert.Equal(t, "rwx------", res.Perms)

	_, err = run(t, "chmod", "9", file)
	assert.Error(t, err)
}

func TestEquivCmd(t *testing.T) {
	isolate(t)
	dir := tempDir(t)
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(dir, link))

	var res equivResult
	runJSON(t, &res, "equiv", dir, link)
	assert.True(t, res.Equivalent)

	runJSON(t, &res, "equiv", dir, filepath.Join(dir, "missing"))
	assert.False(t, res.Equivalent)
}

func TestMountCmd(t *testing.T) {
	isolate(t)
	var res mountResult
	runJSON(t, &res, "mount", "/")
	assert.Equal(t, "/", res.MountPath)
	assert.True(t, res.Mountpoint)
}

func TestDirsCmd(t *testing.T) {
	isolate(t)
	var res dirsResult
	runJSON(t, &res, "dirs")
	names := map[string]bool{}
	for _, d := range res.Directories {
		names[d.Name] = true
	}
	assert.True(t, names["home"])
	assert.True(t, names["temp"])
	assert.True(t, names["user cache"])

	_, err := run(t, "dirs", "--domain", "nowhere")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	var res map[string]interface{}
	runJSON(t, &res, "version")
	assert.Equal(t, "dev", res["version"])
	assert.Contains(t, res, "platform")
}

func TestFormatsFromConfig(t *testing.T) {
	isolate(t)
	t.Setenv("PORTFS_OUTPUT_FORMAT", "yaml")
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version: dev")

	out, err = run(t, "--format", "toml", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version = 'dev'")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    filesystem.Perms
		wantErr bool
	}{
		{"755", 0o755, false},
		{"4755", 0o4755, false},
		{"+111", 0o111 | filesystem.AddPerms, false},
		{"-022", 0o022 | filesystem.RemovePerms, false},
		{"", 0, true},
		{"+", 0, true},
		{"rwx", 0, true},
		{"17777", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEvents(t *testing.T) {
	ev, err := parseEvents("created, modified")
	require.NoError(t, err)
	assert.Equal(t, watch.Created|watch.Modified, ev)

	_, err = parseEvents("exploded")
	assert.Error(t, err)
}
