package switcher

import (
	"github.com/arthur-debert/wsp/pkg/filesystem"
	"github.com/arthur-debert/wsp/pkg/links"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/arthur-debert/wsp/pkg/ui/display"
	"github.com/arthur-debert/wsp/pkg/workspace"
)

// StatusOptions defines the options for Status.
type StatusOptions struct {
	Paths paths.Paths
	Files []types.ManagedFile
	// FileSystem is the filesystem to use (optional, defaults to a read-only OS filesystem)
	FileSystem types.FS
}

// Status reports the current selection and how every managed link compares
// to it.
func Status(opts StatusOptions) (*display.StatusResult, error) {
	log := logging.GetLogger("switcher")
	log.Debug().Str("command", "Status").Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewReadOnlyOS()
	}

	snap, err := workspace.Now(fs, opts.Paths)
	if err != nil {
		return nil, err
	}
	cfg, err := snap.Current()
	if err != nil {
		return nil, err
	}

	statuses, err := links.NewUpdater(fs, opts.Paths).Inspect(cfg, opts.Files)
	if err != nil {
		return nil, err
	}

	return &display.StatusResult{
		Workspace:   cfg.MainDir,
		Environment: cfg.EnvDir,
		Root:        opts.Paths.Root(),
		Links:       statuses,
		Home:        opts.Paths.Home(),
	}, nil
}
