package browse

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/logging"
	"github.com/Paintersrp/lcv/internal/state"
	"github.com/Paintersrp/lcv/internal/tui/browser"
)

func NewCmdBrowse(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Open the interactive problem browser.",
		Long: heredoc.Doc(`
			Opens the problem list. Press / to search, s to flip the sort order
			and enter to view a solution. Inside the viewer, n and p move between
			solutions, y copies the file, + - 0 change the text size and t
			switches the theme.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Get()
			if err != nil {
				return err
			}
			return browser.Run(Options(s))
		},
	}

	return cmd
}

// Options wires the browser to a State.
func Options(s *state.State) browser.Options {
	w, err := s.WatchConfig()
	if err != nil {
		logging.Warn("config changes will not be picked up", logging.Err(err))
	}

	return browser.Options{
		Source:    s,
		Renderer:  s.Renderer,
		Clipboard: s.Clipboard,
		Prefs:     s.Config,
		Watcher:   w,
		Status:    s.StatusLine,
	}
}
