package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "wsp")
	testContent := []byte("dev")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "wsp", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0755))
	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS_Symlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	source := filepath.Join(tmpDir, "source")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))

	require.NoError(t, fs.Symlink(source, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, target)
}
