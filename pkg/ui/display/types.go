// Package display holds the results commands hand to renderers, and the
// line layout shared by the text and terminal renderers.
package display

import (
	"github.com/arthur-debert/wsp/pkg/links"
	"github.com/arthur-debert/wsp/pkg/types"
)

// SelectionResult is what togglew, togglee and show produce.
type SelectionResult struct {
	Workspace   string `json:"workspace"`
	Environment string `json:"environment"`

	// DryRun results carry the planned link changes.
	DryRun  bool           `json:"dryRun,omitempty"`
	Changes []links.Change `json:"changes,omitempty"`

	Home string `json:"-"`
}

// NewSelectionResult builds a result for cfg.
func NewSelectionResult(cfg types.WorkspaceConfig) *SelectionResult {
	return &SelectionResult{Workspace: cfg.MainDir, Environment: cfg.EnvDir}
}

// Selection returns the selection as a WorkspaceConfig.
func (r *SelectionResult) Selection() types.WorkspaceConfig {
	return types.WorkspaceConfig{MainDir: r.Workspace, EnvDir: r.Environment}
}

// StatusResult is what the status command produces.
type StatusResult struct {
	Workspace   string         `json:"workspace"`
	Environment string         `json:"environment"`
	Root        string         `json:"root"`
	Links       []links.Status `json:"links"`

	Home string `json:"-"`
}

// WorkspaceEntry is one workspace in a ListResult.
type WorkspaceEntry struct {
	Name         string   `json:"name"`
	Environments []string `json:"environments"`
}

// ListResult is what the list command produces.
type ListResult struct {
	Workspace   string           `json:"workspace,omitempty"`
	Environment string           `json:"environment,omitempty"`
	Workspaces  []WorkspaceEntry `json:"workspaces"`
}
