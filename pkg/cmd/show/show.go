package show

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/logging"
	"github.com/Paintersrp/lcv/internal/problems"
	"github.com/Paintersrp/lcv/internal/state"
	"github.com/Paintersrp/lcv/internal/viewer"
	"github.com/Paintersrp/lcv/pkg/shared/arg"
	"github.com/Paintersrp/lcv/utils"
)

var errNoProblem = errors.New("no problem given")

// chooseFile asks which solution to show; replaced in tests.
var chooseFile = promptForFile

func NewCmdShow(l *state.Lazy) *cobra.Command {
	var (
		index       int
		toClipboard bool
		raw         bool
	)

	cmd := &cobra.Command{
		Use:     "show <problem> [--index i] [--copy] [--raw]",
		Aliases: []string{"s", "cat"},
		Short:   "Print one solution file.",
		Long: heredoc.Doc(`
			Prints a solution of the given problem. The problem can be its number,
			its folder name or its display name.

			When the problem has several solutions and --index is not given, you
			are asked to choose one. Output is highlighted on a terminal; use
			--raw to print the file as is.
		`),
		Example: heredoc.Doc(`
			lcv show 1
			lcv show two sum --index 2
			lcv show 1-two-sum --raw --copy
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := arg.HandleProblem(args)
			if ref == "" {
				return errNoProblem
			}

			s, err := l.Get()
			if err != nil {
				return err
			}

			c, err := s.Build(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load solutions: %w", err)
			}

			p, ok := c.Find(ref)
			if !ok {
				return fmt.Errorf("no problem matches %q", ref)
			}

			idx := index - 1
			if !cmd.Flags().Changed("index") {
				idx, err = pickIndex(p)
				if err != nil {
					return err
				}
			}

			v, req, err := viewer.State{}.Open(p, idx)
			if err != nil {
				return err
			}

			content, fetchErr := s.Fetch(cmd.Context(), req.URL)
			v, _ = v.Resolve(viewer.Result{ID: req.ID, Content: content, Err: fetchErr})
			if v.Phase() == viewer.Errored {
				logging.Warn("failed to load file", logging.String("url", req.URL), logging.Err(fetchErr))
				return errors.New(v.Display())
			}

			if toClipboard {
				if _, err := v.Copy(s.Clipboard); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
			}

			return write(cmd.OutOrStdout(), s, v, raw)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 1, "Solution to show, starting at 1. Out of range values wrap around.")
	cmd.Flags().BoolVarP(&toClipboard, "copy", "c", false, "Also copy the solution to the clipboard.")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the file without highlighting.")

	return cmd
}

func pickIndex(p problems.Problem) (int, error) {
	if len(p.Files) <= 1 || !utils.IsTerminal(os.Stdin) {
		return 0, nil
	}
	return chooseFile(p)
}

func promptForFile(p problems.Problem) (int, error) {
	names := make([]string, len(p.Files))
	for i, f := range p.Files {
		names[i] = f.Name
	}

	sel := selection.New(fmt.Sprintf("Which solution of %s?", p.DisplayName), names)
	sel.Filter = nil

	choice, err := sel.RunPrompt()
	if err != nil {
		return 0, err
	}

	for i, n := range names {
		if n == choice {
			return i, nil
		}
	}
	return 0, nil
}

func write(w io.Writer, s *state.State, v viewer.State, raw bool) error {
	content := v.Content()

	f, isFile := w.(*os.File)
	if raw || !isFile || !utils.IsTerminal(f) {
		_, err := io.WriteString(w, content)
		return err
	}

	file, _ := v.File()
	width := utils.TerminalWidth(f, utils.DefaultWidth)
	out, err := s.Renderer.Code(content, file.Language, s.Config.ThemeValue(), width)
	if err != nil {
		logging.Debug("render failed", logging.String("file", file.Name), logging.Err(err))
	}
	_, err = io.WriteString(w, out)
	return err
}
