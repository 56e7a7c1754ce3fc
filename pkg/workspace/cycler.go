package workspace

import (
	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/types"
)

// Current returns the selection at the persisted indices.
func (s *Snapshot) Current() (types.WorkspaceConfig, error) {
	return s.at(s.CurrentWorkspace, s.CurrentEnvironment)
}

// NextWorkspace advances to the following workspace, wrapping past the
// last, and selects its first environment.
func (s *Snapshot) NextWorkspace() (types.WorkspaceConfig, error) {
	if len(s.Workspaces) == 0 {
		return types.WorkspaceConfig{}, errors.New(errors.ErrEmptyWorkspaces, "no workspaces")
	}
	return s.at(next(s.CurrentWorkspace, len(s.Workspaces)), 0)
}

// NextEnvironment advances to the following environment of the current
// workspace, wrapping past the last.
func (s *Snapshot) NextEnvironment() (types.WorkspaceConfig, error) {
	workspace, err := s.workspace(s.CurrentWorkspace)
	if err != nil {
		return types.WorkspaceConfig{}, err
	}
	envs, err := s.environments(workspace)
	if err != nil {
		return types.WorkspaceConfig{}, err
	}
	return s.at(s.CurrentWorkspace, next(s.CurrentEnvironment, len(envs)))
}

// Select returns the selection an action operates on.
func (s *Snapshot) Select(action types.Action) (types.WorkspaceConfig, error) {
	switch action {
	case types.ActionNextWorkspace:
		return s.NextWorkspace()
	case types.ActionNextEnvironment:
		return s.NextEnvironment()
	default:
		return s.Current()
	}
}

func next(i, n int) int {
	if i >= n-1 {
		return 0
	}
	return i + 1
}

func (s *Snapshot) at(wsIndex, envIndex int) (types.WorkspaceConfig, error) {
	workspace, err := s.workspace(wsIndex)
	if err != nil {
		return types.WorkspaceConfig{}, err
	}
	envs, err := s.environments(workspace)
	if err != nil {
		return types.WorkspaceConfig{}, err
	}
	if envIndex < 0 || envIndex >= len(envs) {
		return types.WorkspaceConfig{}, errors.Newf(errors.ErrEnvironmentNotFound,
			"environment index %d out of range for workspace %q", envIndex, workspace)
	}
	return types.WorkspaceConfig{MainDir: workspace, EnvDir: envs[envIndex]}, nil
}

func (s *Snapshot) workspace(i int) (string, error) {
	if i < 0 || i >= len(s.Workspaces) {
		return "", errors.Newf(errors.ErrWorkspaceNotFound, "workspace index %d out of range", i)
	}
	return s.Workspaces[i], nil
}

func (s *Snapshot) environments(workspace string) ([]string, error) {
	envs, ok := s.Environments[workspace]
	if !ok {
		return nil, errors.Newf(errors.ErrWorkspaceNotFound, "workspace %q missing from snapshot", workspace)
	}
	if len(envs) == 0 {
		return nil, errors.Newf(errors.ErrEmptyEnvironments, "workspace %q has no environments", workspace).
			WithDetail("workspace", workspace)
	}
	return envs, nil
}
