package types

import (
	"fmt"
	"path/filepath"
)

// WorkspaceConfig is a resolved selection: the workspace directory name and
// the environment directory name inside it.
type WorkspaceConfig struct {
	MainDir string `json:"workspace" toml:"workspace"`
	EnvDir  string `json:"environment" toml:"environment"`
}

// String renders the selection the way it is printed to the user.
func (w WorkspaceConfig) String() string {
	return fmt.Sprintf("[%s] - [%s]", w.MainDir, w.EnvDir)
}

// ManagedFile describes one symlink the switcher owns: the directory the link
// lives in and the link's name, which is also the name looked up in the
// workspace source directories.
type ManagedFile struct {
	TargetPath string `json:"target" toml:"target" koanf:"target"`
	FileName   string `json:"name" toml:"name" koanf:"name"`
}

// LinkPath is the full path of the symlink.
func (m ManagedFile) LinkPath() string {
	return filepath.Join(m.TargetPath, m.FileName)
}
