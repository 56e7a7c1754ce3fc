package wsp

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Switch between workspaces and environments"
	MsgToggleWShort    = "Switch to the next workspace"
	MsgToggleWLong     = "Select the next workspace in alphabetical order, wrapping around, with its first environment. Managed links are updated and the selection is saved."
	MsgToggleEShort    = "Switch to the next environment"
	MsgToggleELong     = "Select the next environment of the active workspace in alphabetical order, wrapping around. Managed links are updated and the selection is saved."
	MsgShowShort       = "Print the active selection"
	MsgStatusShort     = "Show the state of every managed link"
	MsgListShort       = "List workspaces and their environments"
	MsgListLong        = "List every workspace under the workspace root with its environments. The active selection is marked with '*'."
	MsgGenConfigShort  = "Print the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Show the link changes without making them"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/wsp/config.toml)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagEffective = "Print the resolved configuration instead of the defaults"

	// Error messages
	MsgErrMissingCommand = "missing command"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
