package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("WSP_CONFIG_DIR", dir)
	t.Setenv("WSP_ROOT", "")
	os.Unsetenv("WSP_ROOT")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "~/workspace", cfg.Root)
	assert.Empty(t, cfg.Source)
	assert.Equal(t, []ManagedFile{
		{Target: "~", Name: ".gitconfig"},
		{Target: "~/.ssh", Name: "id_rsa"},
		{Target: "~/.ssh", Name: "id_rsa.pub"},
		{Target: "~", Name: ".gnupg"},
		{Target: "~", Name: ".password-store"},
		{Target: "~/.config", Name: "snipets"},
	}, cfg.ManagedFiles)
}

func TestLoad_UserFileReplacesList(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
root = "/srv/spaces"

[[managed_files]]
target = "~"
name = ".npmrc"
`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/spaces", cfg.Root)
	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.Source)
	assert.Equal(t, []ManagedFile{{Target: "~", Name: ".npmrc"}}, cfg.ManagedFiles)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	explicit := filepath.Join(t.TempDir(), "other.toml")
	require.NoError(t, os.WriteFile(explicit, []byte(`root = "/other"`), 0644))

	cfg, err := Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, "/other", cfg.Root)
	assert.Len(t, cfg.ManagedFiles, 6, "defaults are kept when the user file does not set the list")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_EnvOverridesRoot(t *testing.T) {
	isolate(t)
	t.Setenv("WSP_ROOT", "/from/env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Root)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown_key",
			content: "rooot = \"/x\"\n",
		},
		{
			name:    "invalid_toml",
			content: "root = \n",
		},
		{
			name: "name_with_separator",
			content: `
[[managed_files]]
target = "~"
name = ".ssh/id_rsa"
`,
		},
		{
			name: "duplicate_entry",
			content: `
[[managed_files]]
target = "~"
name = ".gitconfig"

[[managed_files]]
target = "~"
name = ".gitconfig"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(tt.content), 0644))

			_, err := Load("")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
		})
	}
}

func TestConfig_Files(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	cfg := &Config{ManagedFiles: []ManagedFile{
		{Target: "~", Name: ".gitconfig"},
		{Target: "~/.ssh", Name: "id_rsa"},
		{Target: "$XDG_CONFIG_HOME", Name: "snipets"},
		{Target: "/etc/app", Name: "conf"},
	}}

	home := filepath.FromSlash("/home/u")
	assert.Equal(t, []types.ManagedFile{
		{TargetPath: home, FileName: ".gitconfig"},
		{TargetPath: filepath.Join(home, ".ssh"), FileName: "id_rsa"},
		{TargetPath: "/xdg", FileName: "snipets"},
		{TargetPath: "/etc/app", FileName: "conf"},
	}, cfg.Files(home))
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "~/workspace", cfg.Root)
	assert.Len(t, cfg.ManagedFiles, 6)
}
