package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_MemMap(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := NewAferoFS(mem)

	require.NoError(t, mem.MkdirAll("/root/workspace/dev", 0755))
	require.NoError(t, fs.WriteFile("/root/workspace/file", []byte("content"), 0644))

	content, err := fs.ReadFile("/root/workspace/file")
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	_, err = fs.ReadFile("/root/workspace/dev")
	assert.ErrorIs(t, err, os.ErrInvalid)

	entries, err := fs.ReadDir("/root/workspace")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "dev", entries[0].Name())
	assert.True(t, entries[0].IsDir())
	assert.Equal(t, "file", entries[1].Name())

	info, err := fs.Lstat("/root/workspace/file")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestAferoFS_MemMapHasNoSymlinks(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	err := fs.Symlink("/a", "/b")
	assert.ErrorIs(t, err, afero.ErrNoSymlink)
}

func TestNewReadOnlyOS(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "env")
	require.NoError(t, os.WriteFile(existing, []byte("work"), 0644))
	require.NoError(t, os.Symlink(existing, filepath.Join(tmpDir, "link")))

	fs := NewReadOnlyOS()

	content, err := fs.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "work", string(content))

	info, err := fs.Lstat(filepath.Join(tmpDir, "link"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	target, err := fs.Readlink(filepath.Join(tmpDir, "link"))
	require.NoError(t, err)
	assert.Equal(t, existing, target)

	assert.Error(t, fs.WriteFile(existing, []byte("home"), 0644))
	assert.Error(t, fs.Remove(existing))

	content, err = os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "work", string(content))
}
