package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment_Memory(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.Equal(t, filepath.Join(env.HomeDir, "workspace"), env.Paths.Root())

	env.CreateWorkspace("dev", "home", "work")
	env.SetSelection("dev", "work")

	ws, e := env.Selection()
	assert.Equal(t, "dev", ws)
	assert.Equal(t, "work", e)

	info, err := env.FS.Stat(filepath.Join(env.Root, "dev", "default"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(env.Root)
	assert.True(t, os.IsNotExist(err), "memory environment must not touch disk")
}

func TestNewTestEnvironment_Isolated(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated)

	path := env.AddFile("dev", "work", "id_rsa", "KEY")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "KEY", string(content))

	sshPath := env.HomePath(".ssh", "id_rsa")
	info, err := os.Stat(filepath.Dir(sshPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
