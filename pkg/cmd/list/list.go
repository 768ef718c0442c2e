package list

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/filter"
	"github.com/Paintersrp/lcv/internal/problems"
	"github.com/Paintersrp/lcv/internal/state"
	"github.com/Paintersrp/lcv/pkg/shared/flags"
	"github.com/Paintersrp/lcv/utils"
)

const nameWidth = 48

func NewCmdList(l *state.Lazy) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [--query text] [--sort asc|desc]",
		Aliases: []string{"ls"},
		Short:   "Print the problems of the repository.",
		Long: heredoc.Doc(`
			Fetches the repository listing and prints one line per problem with
			its number, name and solution languages. Output is a table on a
			terminal and tab separated otherwise.
		`),
		Example: heredoc.Doc(`
			lcv list
			lcv list --query "linked list" --sort desc
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := flags.HandleQuery(cmd)
			if err != nil {
				return err
			}
			dir, err := flags.HandleSort(cmd)
			if err != nil {
				return err
			}

			s, err := l.Get()
			if err != nil {
				return err
			}

			c, err := s.Build(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load solutions: %w", err)
			}

			out := cmd.OutOrStdout()
			return write(out, filter.Apply(c, query, dir), isTerminal(out))
		},
	}

	flags.AddQuery(cmd)
	flags.AddSort(cmd)

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && utils.IsTerminal(f)
}

func write(w io.Writer, ps []problems.Problem, pretty bool) error {
	if !pretty {
		for _, p := range ps {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", p.Key(), p.DisplayName, strings.Join(p.Languages(), ",")); err != nil {
				return err
			}
		}
		return nil
	}

	if len(ps) == 0 {
		_, err := fmt.Fprintln(w, constants.NoResultsMessage)
		return err
	}

	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{
			strconv.Itoa(p.Key()),
			utils.Truncate(p.DisplayName, nameWidth),
			strconv.Itoa(len(p.Files)),
			strings.Join(p.Languages(), ", "),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#334455"))).
		Headers("#", "Problem", "Files", "Languages").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
