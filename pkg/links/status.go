package links

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/types"
)

// Inspect reports, for every file, how its link compares to what cfg
// would produce. It never modifies anything.
func (u *Updater) Inspect(cfg types.WorkspaceConfig, files []types.ManagedFile) ([]Status, error) {
	statuses := make([]Status, 0, len(files))
	for _, file := range files {
		status, err := u.inspect(cfg, file)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (u *Updater) inspect(cfg types.WorkspaceConfig, file types.ManagedFile) (Status, error) {
	status := Status{File: file}

	sourceDir, err := u.ResolveSource(cfg, file)
	if err != nil {
		return status, err
	}
	if sourceDir != "" {
		status.Expected = filepath.Join(sourceDir, file.FileName)
	}

	linkPath := file.LinkPath()
	info, err := u.fs.Lstat(linkPath)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		if status.Expected == "" {
			status.State = StateAbsent
		} else {
			status.State = StateMissing
		}
		return status, nil
	case err != nil:
		return status, errors.IO(err, "lstat", linkPath)
	case !isSymlink(info):
		status.State = StateUnmanaged
		return status, nil
	}

	actual, err := u.fs.Readlink(linkPath)
	if err != nil {
		return status, errors.IO(err, "readlink", linkPath)
	}
	status.Actual = actual

	if actual == status.Expected {
		status.State = StateLinked
	} else {
		status.State = StateStale
	}
	return status, nil
}
