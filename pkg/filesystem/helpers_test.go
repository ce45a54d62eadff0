package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portfs/pkg/fspath"
)

// tempRoot returns a fresh directory with symlinks in its own path resolved,
// so canonical results compare equal.
func tempRoot(t *testing.T) fspath.Path {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return fspath.New(dir)
}

// uniqueName returns a name that cannot exist yet.
func uniqueName() string {
	return uuid.NewString()
}

func writeFile(t *testing.T, p fspath.Path, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(p.Native(), []byte("portfs"), mode))
	require.NoError(t, os.Chmod(p.Native(), mode))
}

func mkdir(t *testing.T, p fspath.Path) {
	t.Helper()
	require.NoError(t, os.MkdirAll(p.Native(), 0o755))
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, p fspath.Path) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(p.Native()))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
