package display

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/wsp/pkg/links"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionLine(t *testing.T) {
	assert.Equal(t, "[proj] - [dev]", SelectionLine(Plain, "proj", "dev"))

	tagged := func(style, s string) string { return "<" + style + ">" + s }
	assert.Equal(t, "<Workspace>[proj]<Separator> - <Environment>[dev]", SelectionLine(tagged, "proj", "dev"))
}

func TestWriteSelection(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSelection(&buf, Plain, NewSelectionResult(types.WorkspaceConfig{MainDir: "proj", EnvDir: "dev"})))
		assert.Equal(t, "[proj] - [dev]\n", buf.String())
	})

	t.Run("dry_run", func(t *testing.T) {
		var buf bytes.Buffer
		result := &SelectionResult{
			Workspace:   "proj",
			Environment: "dev",
			DryRun:      true,
			Home:        "/home/u",
			Changes: []links.Change{
				{File: types.ManagedFile{TargetPath: "/home/u", FileName: ".envrc"}, Source: "/home/u/workspace/proj/dev/.envrc", Outcome: links.OutcomeLinked},
				{File: types.ManagedFile{TargetPath: "/home/u", FileName: ".bashrc"}, Outcome: links.OutcomeSkipped},
				{File: types.ManagedFile{TargetPath: "/home/u/.ssh", FileName: "config"}, Previous: "/x", Outcome: links.OutcomeRemoved},
			},
		}
		require.NoError(t, WriteSelection(&buf, Plain, result))
		assert.Equal(t, "[proj] - [dev]\n"+
			"dry run, nothing changed:\n"+
			"  link   ~/.envrc -> ~/workspace/proj/dev/.envrc\n"+
			"  skip   ~/.bashrc (not a symlink)\n"+
			"  unlink ~/.ssh/config\n", buf.String())
	})
}

func TestWriteStatus(t *testing.T) {
	var buf bytes.Buffer
	result := &StatusResult{
		Workspace:   "proj",
		Environment: "dev",
		Home:        "/home/u",
		Links: []links.Status{
			{File: types.ManagedFile{TargetPath: "/home/u", FileName: ".envrc"}, Expected: "/home/u/workspace/proj/dev/.envrc", Actual: "/home/u/workspace/proj/dev/.envrc", State: links.StateLinked},
			{File: types.ManagedFile{TargetPath: "/home/u", FileName: ".psqlrc"}, Actual: "/old", State: links.StateStale},
			{File: types.ManagedFile{TargetPath: "/home/u", FileName: ".bashrc"}, State: links.StateUnmanaged},
		},
	}
	require.NoError(t, WriteStatus(&buf, Plain, result))
	assert.Equal(t, "[proj] - [dev]\n"+
		"linked    ~/.envrc -> ~/workspace/proj/dev/.envrc\n"+
		"stale     ~/.psqlrc -> /old (want nothing)\n"+
		"unmanaged ~/.bashrc\n", buf.String())
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	result := &ListResult{
		Workspace:   "proj",
		Environment: "prod",
		Workspaces: []WorkspaceEntry{
			{Name: "other", Environments: []string{"dev"}},
			{Name: "proj", Environments: []string{"dev", "prod"}},
			{Name: "bare"},
		},
	}
	require.NoError(t, WriteList(&buf, Plain, result))
	assert.Equal(t, "  other\n"+
		"    dev\n"+
		"* proj\n"+
		"    dev\n"+
		"  * prod\n"+
		"  bare\n"+
		"    (no environments)\n", buf.String())
}
