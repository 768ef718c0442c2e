package viewer

import (
	"errors"
	"testing"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/problems"
)

type fakeClipboard struct {
	text   string
	writes int
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	f.writes++
	return nil
}

func problemWith(n int) problems.Problem {
	p := problems.Problem{Name: "1-two-sum", DisplayName: "two sum"}
	for i := 0; i < n; i++ {
		name := string(rune('A'+i)) + ".py"
		p.Files = append(p.Files, problems.CodeFile{
			Name:        name,
			DisplayName: string(rune('A' + i)),
			DownloadURL: "raw/" + name,
			Language:    "py",
		})
	}
	return p
}

func TestOpenLoadsAndResolves(t *testing.T) {
	var s State
	if s.IsOpen() || s.Display() != "" {
		t.Fatal("zero state should be closed")
	}

	s, req, err := s.Open(problemWith(2), 1)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s.Phase() != Loading || s.Display() != constants.LoadingMessage {
		t.Fatalf("expected loading state, got %s %q", s.Phase(), s.Display())
	}
	if req.URL != "raw/B.py" || req.Index != 1 || req.ID == 0 || s.Pending() != req.ID {
		t.Fatalf("unexpected request %+v", req)
	}

	s, ok := s.Resolve(Result{ID: req.ID, Content: "print(1)\n"})
	if !ok {
		t.Fatal("expected current result to be committed")
	}
	if s.Phase() != Loaded || s.Content() != "print(1)\n" || s.Display() != "print(1)\n" {
		t.Fatalf("unexpected loaded state %s %q", s.Phase(), s.Content())
	}
	if f, ok := s.File(); !ok || f.Name != "B.py" {
		t.Fatalf("unexpected open file %+v", f)
	}
}

func TestOpenFailureShowsPlaceholder(t *testing.T) {
	s, req, _ := State{}.Open(problemWith(1), 0)
	s, ok := s.Resolve(Result{ID: req.ID, Err: errors.New("status 500: boom")})
	if !ok {
		t.Fatal("expected failure to be committed")
	}
	if s.Phase() != Errored {
		t.Fatalf("expected errored phase, got %s", s.Phase())
	}
	if s.Display() != constants.FileLoadFailedMessage {
		t.Fatalf("expected fixed placeholder, got %q", s.Display())
	}
	if s.Content() != "" {
		t.Fatalf("raw error leaked into content: %q", s.Content())
	}
}

func TestOpenWithoutFiles(t *testing.T) {
	s, _, err := State{}.Open(problems.Problem{Name: "empty"}, 0)
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
	if s.IsOpen() {
		t.Fatal("state should stay closed")
	}
}

func TestStaleResultIsDiscarded(t *testing.T) {
	p := problemWith(3)
	s, first, _ := State{}.Open(p, 0)
	s, second, _ := s.Open(p, 2)

	s, ok := s.Resolve(Result{ID: first.ID, Content: "old"})
	if ok {
		t.Fatal("stale result must not be committed")
	}
	if s.Phase() != Loading || s.Index() != 2 {
		t.Fatalf("stale result changed state: %s index %d", s.Phase(), s.Index())
	}

	s, ok = s.Resolve(Result{ID: second.ID, Content: "new"})
	if !ok || s.Content() != "new" {
		t.Fatalf("expected newest result, got ok=%v content=%q", ok, s.Content())
	}

	// A duplicate delivery after commit is ignored too.
	if _, ok := s.Resolve(Result{ID: second.ID, Content: "again"}); ok {
		t.Fatal("result for a settled request must be ignored")
	}
}

func TestResultAfterCloseAndReopenIsStale(t *testing.T) {
	p := problemWith(1)
	s, before, _ := State{}.Open(p, 0)
	s = s.Close()
	s, after, _ := s.Open(p, 0)

	if before.ID == after.ID {
		t.Fatal("request IDs must not repeat across Close")
	}
	if _, ok := s.Resolve(Result{ID: before.ID, Content: "late"}); ok {
		t.Fatal("pre-close result must be discarded")
	}
}

func TestSwitchWrapsBothWays(t *testing.T) {
	p := problemWith(3)
	for _, dir := range []Direction{Next, Prev} {
		s, _, _ := State{}.Open(p, 1)
		for i := 0; i < len(p.Files); i++ {
			var ok bool
			s, _, ok = s.Switch(dir)
			if !ok {
				t.Fatalf("switch %d failed", i)
			}
		}
		if s.Index() != 1 {
			t.Fatalf("direction %d: expected to return to index 1, got %d", dir, s.Index())
		}
	}

	s, _, _ := State{}.Open(p, 0)
	s, req, _ := s.Switch(Prev)
	if s.Index() != 2 || req.URL != "raw/C.py" || s.Phase() != Loading {
		t.Fatalf("prev from 0 should wrap to 2, got index %d req %+v", s.Index(), req)
	}
	s, _, _ = s.Switch(Next)
	if s.Index() != 0 {
		t.Fatalf("next from 2 should wrap to 0, got %d", s.Index())
	}
}

func TestSwitchNoopCases(t *testing.T) {
	if _, _, ok := (State{}).Switch(Next); ok {
		t.Fatal("switch on closed viewer should be a no-op")
	}

	s, req, _ := State{}.Open(problemWith(1), 0)
	s, _ = s.Resolve(Result{ID: req.ID, Content: "x"})
	next, _, ok := s.Switch(Next)
	if ok {
		t.Fatal("switch with one file should be a no-op")
	}
	if next.Phase() != Loaded || next.Content() != "x" {
		t.Fatal("no-op switch changed the state")
	}
}

func TestCopy(t *testing.T) {
	p := problemWith(2)
	cb := &fakeClipboard{text: "previous"}

	s, req, _ := State{}.Open(p, 0)
	if copied, err := s.Copy(cb); copied || err != nil {
		t.Fatalf("copy while loading: copied=%v err=%v", copied, err)
	}

	errored, _ := s.Resolve(Result{ID: req.ID, Err: errors.New("boom")})
	if copied, err := errored.Copy(cb); copied || err != nil {
		t.Fatalf("copy while errored: copied=%v err=%v", copied, err)
	}
	if cb.text != "previous" || cb.writes != 0 {
		t.Fatalf("clipboard changed while errored: %q (%d writes)", cb.text, cb.writes)
	}

	s, req, _ = errored.Open(p, 1)
	s, _ = s.Resolve(Result{ID: req.ID, Content: "  exact\ttext\n"})
	copied, err := s.Copy(cb)
	if err != nil || !copied {
		t.Fatalf("copy while loaded: copied=%v err=%v", copied, err)
	}
	if cb.text != "  exact\ttext\n" {
		t.Fatalf("copied text not verbatim: %q", cb.text)
	}

	failing := &fakeClipboard{err: errors.New("no clipboard")}
	if copied, err := s.Copy(failing); copied || err == nil {
		t.Fatalf("expected clipboard error, got copied=%v err=%v", copied, err)
	}
}

func TestCloseDiscardsEverything(t *testing.T) {
	s, req, _ := State{}.Open(problemWith(2), 1)
	s, _ = s.Resolve(Result{ID: req.ID, Content: "x"})
	s = s.Close()

	if s.IsOpen() || s.Phase() != Closed {
		t.Fatal("expected closed state")
	}
	if _, ok := s.Problem(); ok {
		t.Fatal("closed state should have no problem")
	}
	if s.Content() != "" || s.Index() != 0 {
		t.Fatalf("closed state kept data: %q index %d", s.Content(), s.Index())
	}
}
