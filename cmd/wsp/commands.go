package wsp

import (
	"fmt"

	"github.com/arthur-debert/wsp/internal/version"
	"github.com/arthur-debert/wsp/pkg/config"
	"github.com/arthur-debert/wsp/pkg/filesystem"
	"github.com/arthur-debert/wsp/pkg/switcher"
	"github.com/arthur-debert/wsp/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func runSwitch(cmd *cobra.Command, opts *options, action types.Action) error {
	if err := opts.load(); err != nil {
		return err
	}
	renderer, err := opts.renderer(cmd)
	if err != nil {
		return err
	}

	fs := filesystem.NewOS()
	if !action.Mutates() || opts.dryRun {
		fs = filesystem.NewReadOnlyOS()
	}

	_, err = switcher.Switch(switcher.SwitchOptions{
		Paths:      opts.paths,
		Files:      opts.files(),
		Action:     action,
		DryRun:     opts.dryRun,
		Renderer:   renderer,
		FileSystem: fs,
	})
	return err
}

func newSwitchCmd(opts *options, action types.Action, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:     string(action),
		Short:   short,
		Long:    long,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, opts, action)
		},
	}
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(); err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := switcher.Status(switcher.StatusOptions{
				Paths: opts.paths,
				Files: opts.files(),
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(); err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := switcher.List(switcher.ListOptions{Paths: opts.paths})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func newGenConfigCmd(opts *options) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}

			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			content, err := cfg.Render()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "wsp version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "WSP",
				Section: "1",
				Source:  "wsp " + version.Version,
				Manual:  "wsp manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
