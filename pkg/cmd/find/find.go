package find

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/fzf"
	"github.com/Paintersrp/lcv/internal/problems"
	"github.com/Paintersrp/lcv/internal/state"
	"github.com/Paintersrp/lcv/internal/tui/browser"
	"github.com/Paintersrp/lcv/pkg/cmd/browse"
)

func NewCmdFind(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find [query]",
		Aliases: []string{"f"},
		Short:   "Fuzzy find a problem and open it in the viewer.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over all problems. The preview pane lists the
			solution files of the highlighted problem. Picking one opens the
			browser with that problem in the viewer.
		`),
		Example: heredoc.Doc(`
			lcv find
			lcv find palindrome
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Get()
			if err != nil {
				return err
			}

			c, err := s.Build(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load solutions: %w", err)
			}

			ff := fzf.NewFuzzyFinder(c, "Pick a problem")
			ff.Theme = s.Config.ThemeValue()

			p, err := pick(ff, args)
			if errors.Is(err, fzf.ErrNoSelection) {
				fmt.Fprintln(cmd.OutOrStdout(), "No problem selected")
				return nil
			}
			if err != nil {
				return err
			}

			opts := browse.Options(s)
			opts.Preloaded = c
			opts.Open = p.Name
			return browser.Run(opts)
		},
	}

	return cmd
}

type finder interface {
	Run() (problems.Problem, error)
	RunWithQuery(query string) (problems.Problem, error)
}

// pick runs f with the joined args as the initial query.
func pick(f finder, args []string) (problems.Problem, error) {
	if len(args) == 0 {
		return f.Run()
	}
	return f.RunWithQuery(strings.Join(args, " "))
}
