package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/portfs/pkg/errors"
)

func TestFromNative_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does_not_exist")
	_, statErr := os.Stat(missing)
	require.Error(t, statErr)

	err := errors.FromNative(statErr, "status failed", missing)
	require.NotNil(t, err)

	assert.Equal(t, errors.ErrNotFound, err.Code)
	assert.Equal(t, missing, err.Path1)
	assert.Empty(t, err.Path2)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist), "native sentinel must survive wrapping")
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, err.Native.IsZero())
	assert.NotEmpty(t, err.Native.Message())
}

func TestFromNative_Nil(t *testing.T) {
	assert.Nil(t, errors.FromNative(nil, "nothing"))
}

func TestFromNative_TwoPaths(t *testing.T) {
	err := errors.FromNative(fs.ErrExist, "rename failed", "/a", "/b")
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, err.Code)
	assert.Equal(t, "/a", err.Path1)
	assert.Equal(t, "/b", err.Path2)
	assert.True(t, err.Native.IsZero(), "sentinel errors carry no native code")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"nil", nil, errors.ErrUnknown},
		{"not_exist", fs.ErrNotExist, errors.ErrNotFound},
		{"exist", fs.ErrExist, errors.ErrAlreadyExists},
		{"permission", fs.ErrPermission, errors.ErrPermission},
		{"invalid", fs.ErrInvalid, errors.ErrInvalidInput},
		{"unsupported", stderrors.ErrUnsupported, errors.ErrNotSupported},
		{"wrapped_sentinel", fmt.Errorf("ctx: %w", fs.ErrNotExist), errors.ErrNotFound},
		{"structured", errors.New(errors.ErrIdentity, "x"), errors.ErrIdentity},
		{"opaque", stderrors.New("boom"), errors.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Classify(tt.err))
		})
	}
}

func TestFromHRESULT(t *testing.T) {
	t.Run("success codes are not errors", func(t *testing.T) {
		assert.Nil(t, errors.FromHRESULT(0, "S_OK"))
		assert.Nil(t, errors.FromHRESULT(1, "S_FALSE"))
	})

	t.Run("failure codes keep their value", func(t *testing.T) {
		const eInvalidArg = int32(-2147024809) // 0x80070057
		err := errors.FromHRESULT(eInvalidArg, "com call failed")
		require.NotNil(t, err)
		assert.Equal(t, errors.CategoryHRESULT, err.Native.Category)
		assert.Equal(t, int64(0x80070057), err.Native.Value)
		assert.Equal(t, errors.ErrInternal, err.Native.Kind())
	})
}

func TestIdentityError(t *testing.T) {
	err := errors.IdentityError(stderrors.New("unknown uid"), "no such user")
	assert.Equal(t, errors.ErrIdentity, err.Code)
	assert.Equal(t, errors.CategoryIdentity, err.Native.Category)
	assert.Equal(t, "identity could not be resolved", err.Native.Message())
	assert.True(t, errors.IsErrorCode(err, errors.ErrIdentity))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "posix", errors.CategoryPOSIX.String())
	assert.Equal(t, "system", errors.CategorySystem.String())
	assert.Equal(t, "hresult", errors.CategoryHRESULT.String())
	assert.Equal(t, "identity", errors.CategoryIdentity.String())
	assert.Equal(t, "generic", errors.CategoryGeneric.String())
}
