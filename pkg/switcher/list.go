package switcher

import (
	"github.com/arthur-debert/wsp/pkg/filesystem"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/arthur-debert/wsp/pkg/ui/display"
	"github.com/arthur-debert/wsp/pkg/workspace"
)

// ListOptions defines the options for List.
type ListOptions struct {
	Paths paths.Paths
	// FileSystem is the filesystem to use (optional, defaults to a read-only OS filesystem)
	FileSystem types.FS
}

// List returns every workspace with its environments. Unlike Switch it
// works on a fresh root: a missing or unreadable selection leaves the
// current markers empty instead of failing.
func List(opts ListOptions) (*display.ListResult, error) {
	log := logging.GetLogger("switcher")
	log.Debug().Str("command", "List").Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewReadOnlyOS()
	}

	workspaces, err := workspace.ListSubdirs(fs, opts.Paths.Root())
	if err != nil {
		return nil, err
	}

	result := &display.ListResult{Workspaces: make([]display.WorkspaceEntry, 0, len(workspaces))}
	for _, ws := range workspaces {
		envs, err := workspace.ListSubdirs(fs, opts.Paths.WorkspaceDir(ws))
		if err != nil {
			return nil, err
		}
		result.Workspaces = append(result.Workspaces, display.WorkspaceEntry{Name: ws, Environments: envs})
	}

	if cfg, err := workspace.ReadSelection(fs, opts.Paths); err == nil {
		result.Workspace = cfg.MainDir
		result.Environment = cfg.EnvDir
	} else {
		log.Debug().Err(err).Msg("No selection to mark")
	}

	return result, nil
}
