package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/lcv/internal/display"
	"github.com/Paintersrp/lcv/internal/problems"
)

var ErrNoSelection = errors.New("no problem selected")

type findFunc func(labels []string, preview func(i, w, h int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzyFinder picks a problem from a collection.
type FuzzyFinder struct {
	Header   string
	Theme    display.Theme
	problems []problems.Problem
	find     findFunc
}

func NewFuzzyFinder(ps []problems.Problem, header string) *FuzzyFinder {
	return &FuzzyFinder{problems: ps, Header: header, find: runFinder}
}

func runFinder(labels []string, preview func(i, w, h int) string, opts ...fuzzyfinder.Option) (int, error) {
	opts = append([]fuzzyfinder.Option{fuzzyfinder.WithPreviewWindow(preview)}, opts...)
	return fuzzyfinder.Find(labels, func(i int) string {
		return labels[i]
	}, opts...)
}

// Run opens the finder with an empty query.
func (f *FuzzyFinder) Run() (problems.Problem, error) {
	return f.RunWithQuery("")
}

// RunWithQuery opens the finder pre-filled with query. Aborting returns
// ErrNoSelection.
func (f *FuzzyFinder) RunWithQuery(query string) (problems.Problem, error) {
	if len(f.problems) == 0 {
		return problems.Problem{}, ErrNoSelection
	}

	var options []fuzzyfinder.Option
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	labels := make([]string, len(f.problems))
	for i, p := range f.problems {
		labels[i] = label(p)
	}

	idx, err := f.find(labels, f.renderPreview, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return problems.Problem{}, ErrNoSelection
		}
		return problems.Problem{}, fmt.Errorf("error selecting problem: %w", err)
	}
	if idx < 0 || idx >= len(f.problems) {
		return problems.Problem{}, ErrNoSelection
	}

	return f.problems[idx], nil
}

func label(p problems.Problem) string {
	return fmt.Sprintf("%d. %s [%s]", p.Key(), p.DisplayName, strings.Join(p.Languages(), ", "))
}

func previewMarkdown(p problems.Problem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.DisplayName)
	fmt.Fprintf(&b, "`%s`\n\n", p.Name)
	for i, f := range p.Files {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, f.Name, f.Language)
	}
	return b.String()
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i < 0 || i >= len(f.problems) {
		return ""
	}

	md := previewMarkdown(f.problems[i])
	width := w - 4
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(f.Theme.GlamourStyle()),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}

	return out
}
