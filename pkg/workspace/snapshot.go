package workspace

import (
	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
)

// Snapshot is the persisted selection plus the workspace inventory.
type Snapshot struct {
	// CurrentWorkspace indexes Workspaces.
	CurrentWorkspace int
	// CurrentEnvironment indexes Environments[Workspaces[CurrentWorkspace]].
	CurrentEnvironment int

	Workspaces   []string
	Environments map[string][]string
}

// Now reads the selection files and scans the workspace root.
func Now(fsys types.FS, p paths.Paths) (*Snapshot, error) {
	logger := logging.GetLogger("workspace.snapshot")

	selection, err := ReadSelection(fsys, p)
	if err != nil {
		return nil, err
	}

	workspaces, err := ListSubdirs(fsys, p.Root())
	if err != nil {
		return nil, err
	}

	environments := make(map[string][]string, len(workspaces))
	for _, ws := range workspaces {
		envs, err := ListSubdirs(fsys, p.WorkspaceDir(ws))
		if err != nil {
			return nil, err
		}
		environments[ws] = envs
	}

	wsIndex := indexOf(workspaces, selection.MainDir)
	if wsIndex < 0 {
		return nil, errors.Newf(errors.ErrWorkspaceNotFound, "workspace %q not found", selection.MainDir).
			WithDetail("workspace", selection.MainDir).
			WithDetail("root", p.Root())
	}

	envIndex := indexOf(environments[selection.MainDir], selection.EnvDir)
	if envIndex < 0 {
		return nil, errors.Newf(errors.ErrEnvironmentNotFound, "environment %q not found in workspace %q",
			selection.EnvDir, selection.MainDir).
			WithDetail("workspace", selection.MainDir).
			WithDetail("environment", selection.EnvDir)
	}

	logger.Debug().
		Strs("workspaces", workspaces).
		Int("currentWorkspace", wsIndex).
		Int("currentEnvironment", envIndex).
		Msg("Snapshot taken")

	return &Snapshot{
		CurrentWorkspace:   wsIndex,
		CurrentEnvironment: envIndex,
		Workspaces:         workspaces,
		Environments:       environments,
	}, nil
}

func indexOf(list []string, name string) int {
	for i, v := range list {
		if v == name {
			return i
		}
	}
	return -1
}
