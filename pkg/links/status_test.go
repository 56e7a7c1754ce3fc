package links

import (
	"os"
	"testing"

	"github.com/arthur-debert/wsp/pkg/testutil"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	env, u := newUpdater(t)
	env.CreateWorkspace("proj", "dev", "prod")
	devEnvrc := env.AddFile("proj", "dev", ".envrc", "dev")
	prodEnvrc := env.AddFile("proj", "prod", ".envrc", "prod")
	env.AddFile("proj", "default", ".gitconfig", "x")
	env.AddFile("proj", "default", ".tmux.conf", "x")
	env.AddFile("proj", "default", ".psqlrc", "x")

	linked := managed(env, ".envrc")
	require.NoError(t, os.Symlink(prodEnvrc, linked.LinkPath()))
	missing := managed(env, ".gitconfig")
	unmanaged := managed(env, ".tmux.conf")
	require.NoError(t, os.WriteFile(unmanaged.LinkPath(), []byte("real"), 0600))
	absent := managed(env, ".bashrc")
	stale := managed(env, ".psqlrc")
	require.NoError(t, os.Symlink("/old/target", stale.LinkPath()))

	statuses, err := u.Inspect(types.WorkspaceConfig{MainDir: "proj", EnvDir: "prod"},
		[]types.ManagedFile{linked, missing, unmanaged, absent, stale})
	require.NoError(t, err)
	require.Len(t, statuses, 5)

	assert.Equal(t, StateLinked, statuses[0].State)
	assert.Equal(t, prodEnvrc, statuses[0].Actual)
	assert.Equal(t, StateMissing, statuses[1].State)
	assert.Equal(t, StateUnmanaged, statuses[2].State)
	assert.Equal(t, StateAbsent, statuses[3].State)
	assert.Equal(t, StateStale, statuses[4].State)
	assert.Equal(t, "/old/target", statuses[4].Actual)

	statuses, err = u.Inspect(types.WorkspaceConfig{MainDir: "proj", EnvDir: "dev"}, []types.ManagedFile{linked})
	require.NoError(t, err)
	assert.Equal(t, StateStale, statuses[0].State)
	assert.Equal(t, devEnvrc, statuses[0].Expected)
}

func TestInspect_DoesNotModify(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.CreateWorkspace("proj", "dev")
	env.AddFile("proj", "dev", ".envrc", "dev")
	u := NewUpdater(env.FS, env.Paths)
	file := managed(env, ".envrc")

	_, err := u.Inspect(types.WorkspaceConfig{MainDir: "proj", EnvDir: "dev"}, []types.ManagedFile{file})
	require.NoError(t, err)

	_, err = os.Lstat(file.LinkPath())
	assert.True(t, os.IsNotExist(err))
}
