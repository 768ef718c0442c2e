// Package viewer tracks which solution file is open and what the viewer
// shows for it.
//
// State is a value: every transition returns a new State. Opening a file
// hands back a Request; the caller performs the fetch and feeds the outcome
// to Resolve, which drops outcomes for anything but the latest request.
package viewer

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/problems"
)

type Phase int

const (
	Closed Phase = iota
	Loading
	Loaded
	Errored
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	default:
		return "closed"
	}
}

type Direction int

const (
	Next Direction = iota
	Prev
)

var ErrNoFiles = errors.New("problem has no files")

// Request identifies one content fetch.
type Request struct {
	ID      uint64
	Problem string
	Index   int
	URL     string
}

// Result is the outcome of fetching a Request.
type Result struct {
	ID      uint64
	Content string
	Err     error
}

type State struct {
	phase   Phase
	problem problems.Problem
	index   int
	content string
	current uint64
	lastID  uint64
}

func (s State) Phase() Phase {
	return s.phase
}

func (s State) IsOpen() bool {
	return s.phase != Closed
}

// Problem returns the open problem; ok is false when the viewer is closed.
func (s State) Problem() (problems.Problem, bool) {
	return s.problem, s.phase != Closed
}

func (s State) Index() int {
	return s.index
}

// File returns the open file.
func (s State) File() (problems.CodeFile, bool) {
	if s.phase == Closed || s.index >= len(s.problem.Files) {
		return problems.CodeFile{}, false
	}
	return s.problem.Files[s.index], true
}

// Content returns the fetched text; it is empty unless the phase is Loaded.
func (s State) Content() string {
	if s.phase != Loaded {
		return ""
	}
	return s.content
}

// Display returns what the viewer body shows for the current phase.
func (s State) Display() string {
	switch s.phase {
	case Loading:
		return constants.LoadingMessage
	case Errored:
		return constants.FileLoadFailedMessage
	case Loaded:
		return s.content
	}
	return ""
}

// Pending returns the ID of the request the state is waiting on.
func (s State) Pending() uint64 {
	if s.phase != Loading {
		return 0
	}
	return s.current
}

// Open selects file index of p and moves to Loading. Out-of-range indexes
// wrap around the file list.
func (s State) Open(p problems.Problem, index int) (State, Request, error) {
	n := len(p.Files)
	if n == 0 {
		return s, Request{}, ErrNoFiles
	}
	index = ((index % n) + n) % n

	id := s.lastID + 1
	next := State{
		phase:   Loading,
		problem: p,
		index:   index,
		current: id,
		lastID:  id,
	}
	return next, Request{
		ID:      id,
		Problem: p.Name,
		Index:   index,
		URL:     p.Files[index].DownloadURL,
	}, nil
}

// Resolve commits a fetch outcome. It returns false, leaving the state as
// is, when the result belongs to a superseded request or the viewer is no
// longer waiting.
func (s State) Resolve(r Result) (State, bool) {
	if s.phase != Loading || r.ID != s.current {
		return s, false
	}
	if r.Err != nil {
		s.phase = Errored
		s.content = ""
		return s, true
	}
	s.phase = Loaded
	s.content = r.Content
	return s, true
}

// Switch moves to the next or previous file of the open problem, wrapping at
// both ends. ok is false, and nothing changes, when the viewer is closed or
// the problem has a single file.
func (s State) Switch(dir Direction) (next State, req Request, ok bool) {
	n := len(s.problem.Files)
	if s.phase == Closed || n <= 1 {
		return s, Request{}, false
	}

	idx := (s.index + 1) % n
	if dir == Prev {
		idx = (s.index - 1 + n) % n
	}

	next, req, err := s.Open(s.problem, idx)
	if err != nil {
		return s, Request{}, false
	}
	return next, req, true
}

// Close discards the open problem and content. Request numbering continues,
// so results of requests issued before Close stay stale.
func (s State) Close() State {
	return State{lastID: s.lastID}
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Copy writes the loaded content verbatim to cb. In any other phase it does
// nothing and reports false.
func (s State) Copy(cb Clipboard) (bool, error) {
	if s.phase != Loaded || cb == nil {
		return false, nil
	}
	if err := cb.WriteAll(s.content); err != nil {
		return false, err
	}
	return true, nil
}
