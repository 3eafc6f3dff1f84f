package loader

import (
	"runtime"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingLibrary(t *testing.T) {
	lib, err := Open("libvkcore-does-not-exist.so.42", "vkcore-does-not-exist.dll")
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.True(t, errors.Is(err, ErrLibraryNotFound))
	assert.Contains(t, err.Error(), "libvkcore-does-not-exist.so.42")
}

func TestDefaultNames(t *testing.T) {
	names := DefaultNames()
	switch runtime.GOOS {
	case "linux", "freebsd":
		assert.Equal(t, []string{"libvulkan.so.1", "libvulkan.so"}, names)
	case "darwin":
		require.NotEmpty(t, names)
		assert.Equal(t, "libvulkan.1.dylib", names[0])
	case "windows":
		assert.Equal(t, []string{"vulkan-1.dll"}, names)
	default:
		t.Skipf("no default loader names on %s", runtime.GOOS)
	}
}

func TestLookupInSystemLibrary(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uses glibc as a stand-in library")
	}
	lib, err := Open("libc.so.6")
	if err != nil {
		t.Skipf("libc.so.6 unavailable: %v", err)
	}
	defer lib.Close()

	assert.Equal(t, "libc.so.6", lib.Path())

	addr, err := lib.Lookup("strlen")
	require.NoError(t, err)
	assert.NotZero(t, addr)

	_, err = lib.Lookup("vkcoreNoSuchSymbol")
	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	lib := &Library{}
	assert.NoError(t, lib.Close())
	assert.NoError(t, lib.Close())
}
