package switcher

import (
	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/filesystem"
	"github.com/arthur-debert/wsp/pkg/links"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/arthur-debert/wsp/pkg/ui"
	"github.com/arthur-debert/wsp/pkg/ui/display"
	"github.com/arthur-debert/wsp/pkg/workspace"
)

// SwitchOptions defines the options for Switch.
type SwitchOptions struct {
	// Paths locates the workspace root and the selection files.
	Paths paths.Paths
	// Files are the managed links, in update order.
	Files []types.ManagedFile
	// Action selects what to do; ActionShow leaves everything untouched.
	Action types.Action
	// DryRun computes link changes without applying them or persisting.
	DryRun bool
	// Renderer receives the selection before any mutation.
	Renderer ui.Renderer
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Switch selects a workspace configuration and applies it.
func Switch(opts SwitchOptions) (*display.SelectionResult, error) {
	log := logging.GetLogger("switcher").With().
		Str("action", string(opts.Action)).
		Bool("dryRun", opts.DryRun).
		Logger()
	defer logging.LogOperationStart(log, "switch")()

	if opts.Renderer == nil {
		return nil, errors.New(errors.ErrInternal, "switch requires a renderer")
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	snap, err := workspace.Now(fs, opts.Paths)
	if err != nil {
		return nil, err
	}
	cfg, err := snap.Select(opts.Action)
	if err != nil {
		return nil, err
	}

	result := display.NewSelectionResult(cfg)
	result.Home = opts.Paths.Home()

	if !opts.Action.Mutates() {
		return result, opts.Renderer.RenderResult(result)
	}

	updater := links.NewUpdater(fs, opts.Paths).WithDryRun(opts.DryRun)

	if opts.DryRun {
		changes, err := updater.UpdateAll(cfg, opts.Files)
		if err != nil {
			return nil, err
		}
		result.DryRun = true
		result.Changes = changes
		return result, opts.Renderer.RenderResult(result)
	}

	if err := opts.Renderer.RenderResult(result); err != nil {
		return nil, err
	}

	changes, err := updater.UpdateAll(cfg, opts.Files)
	result.Changes = changes
	if err != nil {
		log.Error().Err(err).Int("applied", len(changes)).Msg("Link update failed, selection not saved")
		return result, err
	}

	if err := workspace.Write(fs, opts.Paths, cfg); err != nil {
		return result, err
	}

	log.Info().Str("selection", cfg.String()).Int("links", len(changes)).Msg("Switched")
	return result, nil
}
