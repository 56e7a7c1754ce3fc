package workspace

import (
	"strings"

	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
)

// ReadSelection reads the persisted selection, trimming surrounding
// whitespace from both names.
func ReadSelection(fsys types.FS, p paths.Paths) (types.WorkspaceConfig, error) {
	workspace, err := fsys.ReadFile(p.WorkspaceFile())
	if err != nil {
		return types.WorkspaceConfig{}, errors.IO(err, "read selection", p.WorkspaceFile())
	}
	environment, err := fsys.ReadFile(p.EnvironmentFile())
	if err != nil {
		return types.WorkspaceConfig{}, errors.IO(err, "read selection", p.EnvironmentFile())
	}

	return types.WorkspaceConfig{
		MainDir: strings.TrimSpace(string(workspace)),
		EnvDir:  strings.TrimSpace(string(environment)),
	}, nil
}

// Write overwrites the two selection files with the literal names. The two
// writes are independent; a failure between them leaves the files
// inconsistent.
func Write(fsys types.FS, p paths.Paths, cfg types.WorkspaceConfig) error {
	logger := logging.GetLogger("workspace.persist")

	if err := fsys.WriteFile(p.WorkspaceFile(), []byte(cfg.MainDir), 0644); err != nil {
		return errors.IO(err, "write selection", p.WorkspaceFile())
	}
	if err := fsys.WriteFile(p.EnvironmentFile(), []byte(cfg.EnvDir), 0644); err != nil {
		return errors.IO(err, "write selection", p.EnvironmentFile())
	}

	logger.Info().
		Str("workspace", cfg.MainDir).
		Str("environment", cfg.EnvDir).
		Msg("Selection saved")
	return nil
}
