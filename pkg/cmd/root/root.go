package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/state"
	"github.com/Paintersrp/lcv/pkg/cmd/browse"
	"github.com/Paintersrp/lcv/pkg/cmd/find"
	"github.com/Paintersrp/lcv/pkg/cmd/list"
	"github.com/Paintersrp/lcv/pkg/cmd/show"
	"github.com/Paintersrp/lcv/pkg/cmd/theme"
)

func NewCmdRoot(l *state.Lazy, opts *state.Options) *cobra.Command {
	browseCmd := browse.NewCmdBrowse(l)

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Browse a repository of LeetCode solutions from the terminal.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			lcv lists the problem folders of a solutions repository on GitHub,
			lets you search and sort them, and shows each solution file with
			syntax highlighting.

			Running lcv without a command opens the interactive browser.
		`),
		Example: heredoc.Doc(`
			lcv
			lcv list --query tree --sort desc
			lcv show 1 --index 2 --copy
			lcv find "two sum"
			lcv theme toggle
		`),
		SilenceUsage: true,
		RunE:         browseCmd.RunE,
	}

	cmd.PersistentFlags().StringVar(
		&opts.ConfigPath,
		"config",
		"",
		"Config file to use (default is ~/.lcv/cfg.yaml).",
	)
	cmd.PersistentFlags().String(
		"repository",
		"",
		"Repository to browse, as owner/name.",
	)
	cmd.PersistentFlags().String(
		"log-level",
		"",
		"Log level: debug, info, warn or error.",
	)
	viper.BindPFlag("repository", cmd.PersistentFlags().Lookup("repository"))
	viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		browseCmd,
		list.NewCmdList(l),
		show.NewCmdShow(l),
		find.NewCmdFind(l),
		theme.NewCmdTheme(l),
	)

	return cmd
}
