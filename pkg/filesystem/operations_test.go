//go:build unix

package filesystem_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portfs/pkg/errors"
	"github.com/arthur-debert/portfs/pkg/filesystem"
	"github.com/arthur-debert/portfs/pkg/fspath"
	"github.com/arthur-debert/portfs/pkg/identity"
)

func TestStatus_NotFoundIsNotAnError(t *testing.T) {
	p := tempRoot(t).Join(uniqueName())

	st, err := filesystem.Status(p)
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeNotFound, st.Type())
	assert.True(t, st.StatusKnown())
	assert.False(t, st.Exists())

	st, err = filesystem.SymlinkStatus(p)
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeNotFound, st.Type())

	exists, err := filesystem.Exists(p)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStatus_BelowAFileIsNotFound(t *testing.T) {
	root := tempRoot(t)
	file := root.Join("file")
	writeFile(t, file, 0o644)

	st, err := filesystem.Status(file.Join("child"))
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeNotFound, st.Type())
}

func TestStatus_EmptyPath(t *testing.T) {
	st, err := filesystem.Status(fspath.Path{})
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeNotFound, st.Type())
}

func TestStatus_RegularFile(t *testing.T) {
	p := tempRoot(t).Join("file.txt")
	writeFile(t, p, 0o640)

	st, err := filesystem.Status(p)
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeRegular, st.Type())
	assert.Equal(t, filesystem.Perms(0o640), st.Perms())
	assert.Equal(t, identity.ProcessUser(), st.Owner().User)
	assert.True(t, st.Owner().Group.Valid())

	info, err := os.Stat(p.Native())
	require.NoError(t, err)
	assert.True(t, st.Times().HasModified())
	assert.True(t, info.ModTime().Equal(st.Times().Modified))

	mtime, err := filesystem.LastWriteTime(p)
	require.NoError(t, err)
	assert.True(t, mtime.Equal(info.ModTime()))
}

func TestStatus_Directory(t *testing.T) {
	root := tempRoot(t)

	st, err := filesystem.Status(root)
	require.NoError(t, err)
	assert.True(t, st.IsDirectory())
	assert.False(t, st.IsOther())
}

func TestStatus_SymlinkFollowing(t *testing.T) {
	root := tempRoot(t)
	target := root.Join("target")
	link := root.Join("link")
	writeFile(t, target, 0o600)
	require.NoError(t, os.Symlink(target.Native(), link.Native()))

	st, err := filesystem.Status(link)
	require.NoError(t, err)
	assert.True(t, st.IsRegularFile())

	lst, err := filesystem.SymlinkStatus(link)
	require.NoError(t, err)
	assert.True(t, lst.IsSymlink())

	isLink, err := filesystem.IsSymlink(link)
	require.NoError(t, err)
	assert.True(t, isLink)
}

func TestStatus_DanglingSymlink(t *testing.T) {
	root := tempRoot(t)
	link := root.Join("dangling")
	require.NoError(t, os.Symlink(root.Join(uniqueName()).Native(), link.Native()))

	st, err := filesystem.Status(link)
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeNotFound, st.Type())

	lst, err := filesystem.SymlinkStatus(link)
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeSymlink, lst.Type())
}

func TestStatus_PermissionDeniedIsAnError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	root := tempRoot(t)
	locked := root.Join("locked")
	mkdir(t, locked)
	require.NoError(t, os.Chmod(locked.Native(), 0))
	t.Cleanup(func() { _ = os.Chmod(locked.Native(), 0o755) })

	st, err := filesystem.Status(locked.Join("inside"))
	require.Error(t, err)
	assert.Equal(t, filesystem.TypeNone, st.Type())
	assert.Equal(t, errors.ErrPermission, errors.GetErrorCode(err))
	assert.Equal(t, errors.CategoryPOSIX, errors.NativeCodeOf(err).Category)

	var fsErr *errors.FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, locked.Join("inside").String(), fsErr.Path1)
}

func TestPredicatesAgreeWithStatus(t *testing.T) {
	root := tempRoot(t)
	file := root.Join("f")
	writeFile(t, file, 0o644)

	for _, p := range []fspath.Path{root, file, root.Join(uniqueName())} {
		st := filesystem.Must(filesystem.Status(p))
		checks := []struct {
			name string
			fn   func(fspath.Path) (bool, error)
			want bool
		}{
			{"exists", filesystem.Exists, st.Exists()},
			{"directory", filesystem.IsDirectory, st.IsDirectory()},
			{"regular", filesystem.IsRegularFile, st.IsRegularFile()},
			{"socket", filesystem.IsSocket, st.IsSocket()},
			{"fifo", filesystem.IsFIFO, st.IsFIFO()},
			{"block", filesystem.IsBlockFile, st.IsBlockFile()},
			{"character", filesystem.IsCharacterFile, st.IsCharacterFile()},
			{"device", filesystem.IsDeviceFile, st.IsDeviceFile()},
			{"other", filesystem.IsOther, st.IsOther()},
		}
		for _, c := range checks {
			got, err := c.fn(p)
			require.NoError(t, err)
			assert.Equal(t, c.want, got, "%s(%s)", c.name, p)
		}
	}
}

func TestCreateDirectory(t *testing.T) {
	root := tempRoot(t)
	p := root.Join("fs17test")

	require.NoError(t, filesystem.CreateDirectory(p, filesystem.PermsAll))
	assert.True(t, filesystem.Must(filesystem.IsDirectory(p)))

	// an existing directory is success
	assert.NoError(t, filesystem.CreateDirectory(p, filesystem.PermsAll))
	assert.NoError(t, filesystem.CreateDirectory(root, filesystem.PermsUnknown))
}

func TestCreateDirectory_ExistingFile(t *testing.T) {
	p := tempRoot(t).Join("file")
	writeFile(t, p, 0o644)

	err := filesystem.CreateDirectory(p, filesystem.PermsAll)
	require.Error(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetErrorCode(err))
}

func TestCreateDirectory_MissingParent(t *testing.T) {
	p := tempRoot(t).Join("a", "b")

	err := filesystem.CreateDirectory(p, filesystem.PermsAll)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCreateDirectories(t *testing.T) {
	root := tempRoot(t)
	p := root.Join("fs17test")
	fp := p.Join("1", "2")

	require.NoError(t, filesystem.CreateDirectories(p, filesystem.PermsAll))
	require.NoError(t, filesystem.CreateDirectories(fp, filesystem.PermsAll))
	assert.True(t, filesystem.Must(filesystem.IsDirectory(fp)))
	assert.NoError(t, filesystem.CreateDirectories(fp, filesystem.PermsAll))
}

func TestCreateDirectories_NonDirectoryPrefix(t *testing.T) {
	root := tempRoot(t)
	fp := root.Join("1", "2")
	writeFile(t, root.Join("1"), 0o644)

	err := filesystem.CreateDirectories(fp, filesystem.PermsAll)
	require.Error(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetErrorCode(err))
}

func TestCreateDirectoryFrom(t *testing.T) {
	root := tempRoot(t)
	src := root.Join("src")
	mkdir(t, src)
	require.NoError(t, os.Chmod(src.Native(), 0o751))

	dst := root.Join("dst")
	require.NoError(t, filesystem.CreateDirectoryFrom(dst, src))
	st := filesystem.Must(filesystem.Status(dst))
	assert.True(t, st.IsDirectory())
	assert.Equal(t, filesystem.Perms(0o751), st.Perms())

	// again, with the directory in place
	assert.NoError(t, filesystem.CreateDirectoryFrom(dst, src))

	file := root.Join("file")
	writeFile(t, file, 0o644)
	err := filesystem.CreateDirectoryFrom(root.Join("other"), file)
	assert.Equal(t, errors.ErrNotDirectory, errors.GetErrorCode(err))
}

func TestRemove(t *testing.T) {
	root := tempRoot(t)
	p := root.Join("file")
	writeFile(t, p, 0o644)

	require.NoError(t, filesystem.Remove(p))
	assert.False(t, filesystem.Must(filesystem.Exists(p)))

	err := filesystem.Remove(p)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRemove_NonEmptyDirectory(t *testing.T) {
	root := tempRoot(t)
	dir := root.Join("dir")
	mkdir(t, dir)
	writeFile(t, dir.Join("f"), 0o644)

	err := filesystem.Remove(dir)
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotEmpty, errors.GetErrorCode(err))
}

func TestPermissions(t *testing.T) {
	p := tempRoot(t).Join("file")
	writeFile(t, p, 0o640)

	require.NoError(t, filesystem.Permissions(p, filesystem.OthersRead|filesystem.AddPerms))
	assert.Equal(t, filesystem.Perms(0o644), filesystem.Must(filesystem.Status(p)).Perms())

	require.NoError(t, filesystem.Permissions(p, filesystem.GroupRead|filesystem.OthersRead|filesystem.RemovePerms))
	assert.Equal(t, filesystem.Perms(0o600), filesystem.Must(filesystem.Status(p)).Perms())

	require.NoError(t, filesystem.Permissions(p, filesystem.OwnerRead))
	assert.Equal(t, filesystem.OwnerRead, filesystem.Must(filesystem.Status(p)).Perms())

	err := filesystem.Permissions(p, filesystem.OwnerRead|filesystem.AddPerms|filesystem.RemovePerms)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
}

func TestPermissions_Symlinks(t *testing.T) {
	root := tempRoot(t)
	target := root.Join("target")
	link := root.Join("link")
	writeFile(t, target, 0o600)
	require.NoError(t, os.Symlink(target.Native(), link.Native()))

	err := filesystem.Permissions(link, filesystem.OwnerRead)
	assert.Equal(t, errors.ErrNotSupported, errors.GetErrorCode(err))

	require.NoError(t, filesystem.Permissions(link, filesystem.OwnerRead|filesystem.GroupRead|filesystem.ResolveSymlinks))
	assert.Equal(t, filesystem.Perms(0o440), filesystem.Must(filesystem.Status(target)).Perms())
}

func TestPermissions_Missing(t *testing.T) {
	err := filesystem.Permissions(tempRoot(t).Join(uniqueName()), filesystem.OwnerAll)
	assert.True(t, errors.IsNotFound(err))
}

func TestEquivalent(t *testing.T) {
	root := tempRoot(t)
	file := root.Join("file")
	link := root.Join("link")
	writeFile(t, file, 0o644)
	require.NoError(t, os.Symlink(file.Native(), link.Native()))
	missing := root.Join(uniqueName())

	tests := []struct {
		name string
		a, b fspath.Path
		want bool
	}{
		{"same path", root, root, true},
		{"parent", root, file, false},
		{"through symlink", link, file, true},
		{"dotted", root.Join("."), root, true},
		{"missing right", root, missing, false},
		{"missing left", missing, root, false},
		{"both missing", missing, missing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filesystem.Equivalent(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentPath(t *testing.T) {
	root := tempRoot(t)
	chdir(t, root)

	cwd, err := filesystem.CurrentPath()
	require.NoError(t, err)
	assert.True(t, filesystem.Must(filesystem.Equivalent(cwd, root)))

	sub := root.Join("sub")
	mkdir(t, sub)
	require.NoError(t, filesystem.SetCurrentPath(sub))
	assert.True(t, filesystem.Must(filesystem.Equivalent(filesystem.Must(filesystem.CurrentPath()), sub)))

	err = filesystem.SetCurrentPath(root.Join(uniqueName()))
	assert.True(t, errors.IsNotFound(err))
}

func TestMust(t *testing.T) {
	root := tempRoot(t)
	st := filesystem.Must(filesystem.Status(root))
	assert.True(t, st.IsDirectory())

	missing := root.Join(uniqueName())
	assert.NotPanics(t, func() { filesystem.Must(filesystem.Status(missing)) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		fsErr, ok := r.(*errors.FilesystemError)
		require.True(t, ok, "panic value is %T", r)
		assert.Equal(t, errors.ErrNotFound, fsErr.Code)
		assert.Equal(t, missing.String(), fsErr.Path1)
	}()
	filesystem.MustDo(filesystem.Remove(missing))
}
