package theme

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/display"
	"github.com/Paintersrp/lcv/internal/state"
)

func NewCmdTheme(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Print or change the viewer theme.",
		ValidArgs: []string{"light", "dark", "toggle"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: heredoc.Doc(`
			Without an argument prints the current theme. With one, stores the
			new theme in the config file; a running browser picks it up.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Get()
			if err != nil {
				return err
			}
			cfg := s.Config

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cfg.ThemeValue())
				return nil
			}

			var t display.Theme
			if strings.EqualFold(args[0], "toggle") {
				t, err = cfg.ToggleTheme()
			} else {
				t, err = display.ParseTheme(args[0])
				if err == nil {
					err = cfg.SetTheme(t)
				}
			}
			if err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	return cmd
}
