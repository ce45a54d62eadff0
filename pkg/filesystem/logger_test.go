package filesystem

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portfs/pkg/fspath"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := log.Logger
	savedLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = saved
		zerolog.SetGlobalLevel(savedLevel)
	})
	return &buf
}

func TestLogger_OperationsLogWithComponent(t *testing.T) {
	buf := captureLogs(t)
	fsys := NewMemory(afero.NewMemMapFs())
	dir := fspath.FromSlash("/work")

	require.NoError(t, fsys.CreateDirectory(dir, PermsAll))
	require.NoError(t, fsys.Permissions(dir, OwnerAll))
	_, err := fsys.Canonical(fspath.FromSlash("work/x"), fspath.FromSlash("/"))
	require.NoError(t, err)
	require.NoError(t, fsys.Remove(dir))

	out := buf.String()
	assert.Contains(t, out, `"component":"filesystem"`)
	assert.Contains(t, out, "directory created")
	assert.Contains(t, out, "permissions changed")
	assert.Contains(t, out, "canonicalized")
	assert.Contains(t, out, "removed")
}

func TestLogger_FollowsGlobalLogger(t *testing.T) {
	first := captureLogs(t)
	logger().Debug().Msg("one")

	second := captureLogs(t)
	logger().Debug().Msg("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}
