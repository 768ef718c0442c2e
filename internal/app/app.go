// Package app holds the application state shared by every view: the
// collection, search and sort settings, display settings and the viewer.
// Transitions are methods returning a new State.
package app

import (
	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/display"
	"github.com/Paintersrp/lcv/internal/filter"
	"github.com/Paintersrp/lcv/internal/problems"
	"github.com/Paintersrp/lcv/internal/viewer"
)

type State struct {
	Collection problems.Collection
	Visible    []problems.Problem
	Query      string
	Direction  filter.Direction
	Theme      display.Theme
	Font       display.FontScale
	Viewer     viewer.State
	Loading    bool
	Err        string
}

// New returns the startup state for the given theme.
func New(theme display.Theme) State {
	if theme == "" {
		theme = display.Light
	}
	return State{
		Theme:     theme,
		Font:      display.DefaultFontScale,
		Direction: filter.Ascending,
	}
}

func (s State) BeginLoad() State {
	s.Loading = true
	s.Err = ""
	return s
}

// Loaded publishes a freshly built collection, replacing the old one.
func (s State) Loaded(c problems.Collection) State {
	s.Collection = c
	s.Loading = false
	s.Err = ""
	return s.refresh()
}

// LoadFailed records a failed build. The previous collection, if any, stays
// as it was; the error detail is not kept.
func (s State) LoadFailed() State {
	s.Loading = false
	s.Err = constants.ListingFailedMessage
	return s
}

func (s State) SetQuery(q string) State {
	s.Query = q
	return s.refresh()
}

func (s State) SetDirection(d filter.Direction) State {
	s.Direction = d
	return s.refresh()
}

func (s State) ToggleDirection() State {
	return s.SetDirection(s.Direction.Toggle())
}

func (s State) SetTheme(t display.Theme) State {
	s.Theme = t
	return s
}

func (s State) ToggleTheme() State {
	return s.SetTheme(s.Theme.Toggle())
}

func (s State) IncreaseFont() State {
	s.Font = s.Font.Increase()
	return s
}

func (s State) DecreaseFont() State {
	s.Font = s.Font.Decrease()
	return s
}

func (s State) ResetFont() State {
	s.Font = s.Font.Reset()
	return s
}

func (s State) WithViewer(v viewer.State) State {
	s.Viewer = v
	return s
}

// Empty reports whether a loaded collection has nothing to show for the
// current query.
func (s State) Empty() bool {
	return !s.Loading && s.Err == "" && len(s.Visible) == 0
}

func (s State) refresh() State {
	s.Visible = filter.Apply(s.Collection, s.Query, s.Direction)
	return s
}
