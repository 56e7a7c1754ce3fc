package links

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/types"
)

// ResolveSource returns the directory the link for file should point into,
// or "" when neither the environment nor the default directory provides it.
func (u *Updater) ResolveSource(cfg types.WorkspaceConfig, file types.ManagedFile) (string, error) {
	workspaceDir := u.paths.WorkspaceDir(cfg.MainDir)
	if !u.isDir(workspaceDir) {
		return "", errors.Newf(errors.ErrWorkspaceNotFound, "workspace directory %s not found", workspaceDir).
			WithDetail("workspace", cfg.MainDir).
			WithDetail("path", workspaceDir)
	}

	for _, dir := range []string{
		u.paths.EnvironmentDir(cfg.MainDir, cfg.EnvDir),
		u.paths.DefaultDir(cfg.MainDir),
	} {
		if u.isDir(dir) && u.exists(filepath.Join(dir, file.FileName)) {
			return dir, nil
		}
	}
	return "", nil
}

func (u *Updater) isDir(path string) bool {
	info, err := u.fs.Stat(path)
	return err == nil && info.IsDir()
}

// exists follows symlinks, so a dangling link in a source directory does
// not count as providing the file.
func (u *Updater) exists(path string) bool {
	_, err := u.fs.Stat(path)
	return err == nil
}

func isSymlink(info fs.FileInfo) bool {
	return info.Mode()&fs.ModeSymlink != 0
}
