// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with a home dir and workspace tree

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wsp/pkg/filesystem"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a home directory with a workspace root
type TestEnvironment struct {
	HomeDir string
	Root    string

	FS    types.FS
	Paths paths.Paths

	Type EnvType

	t    *testing.T
	base afero.Fs
}

// NewTestEnvironment creates a new test environment. HOME and the XDG
// directories are pointed inside it for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	tempDir := t.TempDir()
	switch envType {
	case EnvMemoryOnly:
		env.base = afero.NewMemMapFs()
		env.HomeDir = "/home/testuser"
	case EnvIsolated:
		env.base = afero.NewOsFs()
		env.HomeDir = filepath.Join(tempDir, "home")
	}
	env.Root = filepath.Join(env.HomeDir, paths.DefaultRootName)

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))
	t.Setenv(paths.EnvConfigDir, filepath.Join(tempDir, "config", paths.AppDirName))
	os.Unsetenv("WSP_ROOT")

	env.mkdir(filepath.Join(env.Root, paths.CurrentDirName))

	if envType == EnvMemoryOnly {
		env.FS = filesystem.NewAferoFS(env.base)
	} else {
		env.FS = filesystem.NewOS()
	}

	p, err := paths.New(env.Root)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// CreateWorkspace creates a workspace with a default directory and the
// given environments.
func (te *TestEnvironment) CreateWorkspace(workspace string, environments ...string) string {
	te.t.Helper()
	dir := filepath.Join(te.Root, workspace)
	te.mkdir(filepath.Join(dir, paths.DefaultDirName))
	for _, env := range environments {
		te.mkdir(filepath.Join(dir, env))
	}
	return dir
}

// AddFile writes a file into <root>/<workspace>/<sub>, where sub is an
// environment name or "default".
func (te *TestEnvironment) AddFile(workspace, sub, name, content string) string {
	te.t.Helper()
	dir := filepath.Join(te.Root, workspace, sub)
	te.mkdir(dir)
	path := filepath.Join(dir, name)
	if err := afero.WriteFile(te.base, path, []byte(content), 0600); err != nil {
		te.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// AddDir creates a directory entry named name in <root>/<workspace>/<sub>.
func (te *TestEnvironment) AddDir(workspace, sub, name string) string {
	te.t.Helper()
	path := filepath.Join(te.Root, workspace, sub, name)
	te.mkdir(path)
	return path
}

// SetSelection writes the selection files.
func (te *TestEnvironment) SetSelection(workspace, environment string) {
	te.t.Helper()
	te.writeFile(te.Paths.WorkspaceFile(), workspace)
	te.writeFile(te.Paths.EnvironmentFile(), environment)
}

// Selection reads the selection files back verbatim.
func (te *TestEnvironment) Selection() (string, string) {
	te.t.Helper()
	return te.readFile(te.Paths.WorkspaceFile()), te.readFile(te.Paths.EnvironmentFile())
}

// HomePath joins elements onto the home directory, creating the parent
// directory of the result.
func (te *TestEnvironment) HomePath(elem ...string) string {
	te.t.Helper()
	path := filepath.Join(append([]string{te.HomeDir}, elem...)...)
	te.mkdir(filepath.Dir(path))
	return path
}

func (te *TestEnvironment) mkdir(path string) {
	te.t.Helper()
	if err := te.base.MkdirAll(path, 0755); err != nil {
		te.t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func (te *TestEnvironment) writeFile(path, content string) {
	te.t.Helper()
	if err := afero.WriteFile(te.base, path, []byte(content), 0644); err != nil {
		te.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func (te *TestEnvironment) readFile(path string) string {
	te.t.Helper()
	data, err := afero.ReadFile(te.base, path)
	if err != nil {
		te.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
