package wsp

import (
	"github.com/arthur-debert/wsp/internal/version"
	"github.com/arthur-debert/wsp/pkg/config"
	"github.com/arthur-debert/wsp/pkg/errors"
	"github.com/arthur-debert/wsp/pkg/logging"
	"github.com/arthur-debert/wsp/pkg/paths"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/arthur-debert/wsp/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the global flags and the state loaded from them.
type options struct {
	verbosity  int
	configFile string
	format     string
	dryRun     bool

	cfg   *config.Config
	paths paths.Paths
}

// load reads the configuration and resolves the workspace root. Commands
// that do not touch workspaces never call it.
func (o *options) load() error {
	if o.paths != nil {
		return nil
	}

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	p, err := paths.New(cfg.Root)
	if err != nil {
		return err
	}

	log.Debug().
		Str("root", p.Root()).
		Str("config", cfg.Source).
		Int("managedFiles", len(cfg.ManagedFiles)).
		Msg("Configuration loaded")

	o.cfg = cfg
	o.paths = p
	return nil
}

func (o *options) files() []types.ManagedFile {
	return o.cfg.Files(o.paths.Home())
}

func (o *options) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "wsp [togglew|togglee|show]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrMissingCommand)
			}
			return runSwitch(cmd, opts, types.ParseAction(args[0]))
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSwitchCmd(opts, types.ActionNextWorkspace, MsgToggleWShort, MsgToggleWLong))
	rootCmd.AddCommand(newSwitchCmd(opts, types.ActionNextEnvironment, MsgToggleEShort, MsgToggleELong))
	rootCmd.AddCommand(newSwitchCmd(opts, types.ActionShow, MsgShowShort, ""))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}
