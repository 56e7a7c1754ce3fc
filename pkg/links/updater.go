package links

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/rs/zerolog"
)

// Updater resolves and rewrites managed links.
type Updater struct {
	fs     types.FS
	paths  paths.Paths
	dryRun bool
	logger zerolog.Logger
}

// NewUpdater creates an Updater working through fsys.
func NewUpdater(fsys types.FS, p paths.Paths) *Updater {
	return &Updater{
		fs:     fsys,
		paths:  p,
		logger: logging.GetLogger("links"),
	}
}

// WithDryRun makes the updater compute changes without touching the
// filesystem.
func (u *Updater) WithDryRun(dryRun bool) *Updater {
	u.dryRun = dryRun
	return u
}

// UpdateAll refreshes every file in order and stops at the first error.
// The changes applied before the failure are returned with it.
func (u *Updater) UpdateAll(cfg types.WorkspaceConfig, files []types.ManagedFile) ([]Change, error) {
	changes := make([]Change, 0, len(files))
	for _, file := range files {
		change, err := u.UpdateLink(cfg, file)
		if err != nil {
			return changes, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// UpdateLink points one managed file at its source for cfg.
func (u *Updater) UpdateLink(cfg types.WorkspaceConfig, file types.ManagedFile) (Change, error) {
	sourceDir, err := u.ResolveSource(cfg, file)
	if err != nil {
		return Change{File: file}, err
	}
	return u.RefreshLink(file, sourceDir)
}

// RefreshLink removes the symlink at the file's link path, if there is one,
// and links it to sourceDir/<name> when sourceDir is not empty. The stored
// link target is the joined path as is.
func (u *Updater) RefreshLink(file types.ManagedFile, sourceDir string) (Change, error) {
	linkPath := file.LinkPath()
	change := Change{File: file}
	if sourceDir != "" {
		change.Source = filepath.Join(sourceDir, file.FileName)
	}

	logger := u.logger.With().Str("link", linkPath).Bool("dryRun", u.dryRun).Logger()

	info, err := u.fs.Lstat(linkPath)
	switch {
	case err == nil && !isSymlink(info):
		logger.Warn().Msg("Link path holds a real file, leaving it untouched")
		change.Source = ""
		change.Outcome = OutcomeSkipped
		return change, nil
	case err == nil:
		previous, err := u.fs.Readlink(linkPath)
		if err != nil {
			return change, errors.IO(err, "readlink", linkPath)
		}
		change.Previous = previous
		if !u.dryRun {
			if err := u.fs.Remove(linkPath); err != nil {
				return change, errors.IO(err, "remove", linkPath)
			}
		}
		logger.Debug().Str("previous", previous).Msg("Removed link")
	case !stderrors.Is(err, fs.ErrNotExist):
		return change, errors.IO(err, "lstat", linkPath)
	}

	if change.Source == "" {
		if change.Previous != "" {
			change.Outcome = OutcomeRemoved
		} else {
			change.Outcome = OutcomeAbsent
		}
		logger.Debug().Str("outcome", string(change.Outcome)).Msg("No source for managed file")
		return change, nil
	}

	if !u.dryRun {
		if err := u.fs.Symlink(change.Source, linkPath); err != nil {
			return change, errors.IO(err, "symlink", linkPath)
		}
	}
	change.Outcome = OutcomeLinked
	logger.Debug().Str("source", change.Source).Msg("Created link")
	return change, nil
}
