package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wsp/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for wsp
	EnvConfigDir = "WSP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed layout names. These are part of the on-disk format and are not
// user-configurable.
const (
	// DefaultRootName is the workspace root directory name under home
	DefaultRootName = "workspace"

	// CurrentDirName holds the selection files
	CurrentDirName = "current"

	// DefaultDirName is the per-workspace fallback source directory
	DefaultDirName = "default"

	// WorkspaceFileName holds the active workspace name
	WorkspaceFileName = "wsp"

	// EnvironmentFileName holds the active environment name
	EnvironmentFileName = "env"

	// AppDirName is the directory name for wsp's own files
	AppDirName = "wsp"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"
)

// ReservedNames are directory names that are never workspaces or environments.
var ReservedNames = []string{DefaultDirName, CurrentDirName}

// IsReserved reports whether name is one of ReservedNames.
func IsReserved(name string) bool {
	for _, r := range ReservedNames {
		if name == r {
			return true
		}
	}
	return false
}

// Paths provides the locations wsp reads and writes
type Paths interface {
	Home() string
	Root() string
	CurrentDir() string
	WorkspaceFile() string
	EnvironmentFile() string
	WorkspaceDir(workspace string) string
	EnvironmentDir(workspace, environment string) string
	DefaultDir(workspace string) string
}

type paths struct {
	home string
	root string
}

// New creates a Paths instance rooted at root. An empty root means
// ~/workspace. "~" and environment variables in root are expanded.
func New(root string) (Paths, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	p := &paths{home: home}

	if root == "" {
		p.root = filepath.Join(home, DefaultRootName)
	} else {
		p.root = ExpandHome(os.ExpandEnv(root), home)
	}

	absRoot, err := filepath.Abs(p.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to get absolute path for workspace root")
	}
	p.root = absRoot

	return p, nil
}

// ConfigDir returns wsp's configuration directory, honoring WSP_CONFIG_DIR.
func ConfigDir() string {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		home, _ := HomeDir()
		return ExpandHome(configDir, home)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default user configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// HomeDir returns the user's home directory, preferring $HOME.
func HomeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHomeDirUnavailable, "failed to get home directory")
	}
	if home == "" {
		return "", errors.New(errors.ErrHomeDirUnavailable, "home directory is empty")
	}
	return home, nil
}

// ExpandHome replaces a leading "~" or "~/" in path with home.
func ExpandHome(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	// ~user is left alone
	return path
}

// ContractHome is the inverse of ExpandHome, used for display.
func ContractHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}

func (p *paths) Home() string {
	return p.home
}

func (p *paths) Root() string {
	return p.root
}

func (p *paths) CurrentDir() string {
	return filepath.Join(p.root, CurrentDirName)
}

func (p *paths) WorkspaceFile() string {
	return filepath.Join(p.CurrentDir(), WorkspaceFileName)
}

func (p *paths) EnvironmentFile() string {
	return filepath.Join(p.CurrentDir(), EnvironmentFileName)
}

func (p *paths) WorkspaceDir(workspace string) string {
	return filepath.Join(p.root, workspace)
}

func (p *paths) EnvironmentDir(workspace, environment string) string {
	return filepath.Join(p.root, workspace, environment)
}

func (p *paths) DefaultDir(workspace string) string {
	return filepath.Join(p.root, workspace, DefaultDirName)
}
