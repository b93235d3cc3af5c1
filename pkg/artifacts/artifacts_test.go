package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "figures")

	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Opening an existing directory is fine.
	_, err = NewStore(dir)
	require.NoError(t, err)
}

func TestStoreHasAndSize(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "abc.png")
	assert.False(t, store.Has(path))
	assert.Zero(t, store.Size(path))

	require.NoError(t, os.WriteFile(path, []byte("fake image"), 0o644))
	assert.True(t, store.Has(path))
	assert.Equal(t, int64(10), store.Size(path))

	// Directories never count as artifacts.
	assert.False(t, store.Has(dir))
}

func TestWriteScript(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "abc.py")
	require.NoError(t, store.WriteScript(path, "plt.plot([1])\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plt.plot([1])\n", string(data))

	// Rewriting is idempotent.
	require.NoError(t, store.WriteScript(path, "plt.plot([1])\n"))
}

func TestRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.WriteScript(filepath.Join(dir, "a.py"), "x\n"))

	require.NoError(t, Remove(dir))
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, Remove(dir), "removing a missing directory is not an error")
}
