package workspace

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
)

// ListSubdirs returns the names of the immediate subdirectories of dir in
// ascending byte order, without the reserved names. Entries that are not
// directories, or cannot be stat'ed, are skipped. Symlinks count when they
// resolve to a directory.
func ListSubdirs(fsys types.FS, dir string) ([]string, error) {
	logger := logging.GetLogger("workspace.lister")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.IO(err, "read directory", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if paths.IsReserved(name) {
			continue
		}

		info, err := fsys.Stat(filepath.Join(dir, name))
		if err != nil {
			logger.Trace().Err(err).Str("dir", dir).Str("entry", name).Msg("Skipping unreadable entry")
			continue
		}
		if !info.IsDir() {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
