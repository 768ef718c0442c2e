package problems

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Paintersrp/lcv/internal/github"
)

type fakeLister struct {
	mu       sync.Mutex
	listings map[string][]github.Entry
	failures map[string]error
	calls    []string
}

func (f *fakeLister) ListEntries(ctx context.Context, address string) ([]github.Entry, error) {
	f.mu.Lock()
	f.calls = append(f.calls, address)
	f.mu.Unlock()

	if err, ok := f.failures[address]; ok {
		return nil, err
	}
	return f.listings[address], nil
}

func dir(name string) github.Entry {
	return github.Entry{Name: name, Type: github.TypeDir, URL: "dir/" + name}
}

func file(name string) github.Entry {
	return github.Entry{Name: name, Type: github.TypeFile, DownloadURL: "raw/" + name}
}

func TestBuildVisitsDirectoriesNumerically(t *testing.T) {
	lister := &fakeLister{listings: map[string][]github.Entry{
		"root":   {dir("2"), dir("10"), dir("1"), file("README.md")},
		"dir/1":  {file("a.py")},
		"dir/2":  {file("b.py")},
		"dir/10": {file("c.py")},
	}}

	for _, concurrency := range []int{1, 4} {
		b := NewBuilder(lister, concurrency)
		var visited []string
		b.OnVisit = func(e github.Entry) { visited = append(visited, e.Name) }

		c, err := b.Build(context.Background(), "root")
		if err != nil {
			t.Fatalf("concurrency %d: unexpected error: %v", concurrency, err)
		}

		want := []string{"1", "2", "10"}
		if len(visited) != len(want) {
			t.Fatalf("concurrency %d: visited %v, want %v", concurrency, visited, want)
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Fatalf("concurrency %d: visited %v, want %v", concurrency, visited, want)
			}
			if c[i].Name != want[i] {
				t.Fatalf("concurrency %d: collection order %q at %d, want %q", concurrency, c[i].Name, i, want[i])
			}
		}
	}
}

// reverseLister answers folder listings from the highest numbered folder
// down, so lower folders finish last.
type reverseLister struct {
	mu       sync.Mutex
	finished []string
	tenDone  chan struct{}
	twoDone  chan struct{}
}

func (r *reverseLister) done(name string) {
	r.mu.Lock()
	r.finished = append(r.finished, name)
	r.mu.Unlock()
}

func (r *reverseLister) wait(ch chan struct{}) error {
	select {
	case <-ch:
		return nil
	case <-time.After(2 * time.Second):
		return errors.New("folders were not listed concurrently")
	}
}

func (r *reverseLister) ListEntries(ctx context.Context, address string) ([]github.Entry, error) {
	switch address {
	case "root":
		return []github.Entry{dir("2"), dir("10"), dir("1")}, nil
	case "dir/10":
		r.done("10")
		close(r.tenDone)
		return []github.Entry{file("c.py")}, nil
	case "dir/2":
		if err := r.wait(r.tenDone); err != nil {
			return nil, err
		}
		r.done("2")
		close(r.twoDone)
		return []github.Entry{file("b.py")}, nil
	case "dir/1":
		if err := r.wait(r.twoDone); err != nil {
			return nil, err
		}
		r.done("1")
		return []github.Entry{file("a.py")}, nil
	}
	return nil, nil
}

func TestBuildKeepsNumericOrderWhenFoldersFinishOutOfOrder(t *testing.T) {
	lister := &reverseLister{tenDone: make(chan struct{}), twoDone: make(chan struct{})}

	c, err := NewBuilder(lister, 3).Build(context.Background(), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	finished := []string{"10", "2", "1"}
	for i := range finished {
		if lister.finished[i] != finished[i] {
			t.Fatalf("folders finished %v, want %v", lister.finished, finished)
		}
	}

	want := []string{"1", "2", "10"}
	if len(c) != len(want) {
		t.Fatalf("expected %d problems, got %d", len(want), len(c))
	}
	for i := range want {
		if c[i].Name != want[i] {
			t.Fatalf("collection order %q at %d, want %q", c[i].Name, i, want[i])
		}
	}
}

func TestBuildSkipsFailedAndEmptyFolders(t *testing.T) {
	lister := &fakeLister{
		listings: map[string][]github.Entry{
			"root":        {dir("1-one"), dir("2-two"), dir("3-three"), dir("notes")},
			"dir/1-one":   {file("Solution.java")},
			"dir/3-three": {file("README.md")},
			"dir/notes":   {file("scratch.js")},
		},
		failures: map[string]error{
			"dir/2-two": &github.NetworkError{URL: "dir/2-two", StatusCode: 500},
		},
	}

	c, err := NewBuilder(lister, 2).Build(context.Background(), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c) != 2 {
		t.Fatalf("expected 2 problems, got %d: %+v", len(c), c)
	}
	// "notes" has no digits, so it sorts as 0 ahead of the numbered folders.
	if c[0].Name != "notes" || c[1].Name != "1-one" {
		t.Fatalf("unexpected order: %q, %q", c[0].Name, c[1].Name)
	}
	for _, p := range c {
		if len(p.Files) == 0 {
			t.Fatalf("problem %q has no files", p.Name)
		}
	}
}

func TestBuildRootFailureAborts(t *testing.T) {
	rootErr := &github.NetworkError{URL: "root", StatusCode: 403}
	lister := &fakeLister{failures: map[string]error{"root": rootErr}}

	c, err := NewBuilder(lister, 1).Build(context.Background(), "root")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, rootErr) {
		t.Fatalf("expected wrapped root error, got %v", err)
	}
	if c != nil {
		t.Fatalf("expected no collection, got %+v", c)
	}
	if len(lister.calls) != 1 {
		t.Fatalf("expected only the root listing, got calls %v", lister.calls)
	}
}

func TestBuildCanceledPublishesNothing(t *testing.T) {
	lister := &fakeLister{listings: map[string][]github.Entry{
		"root":  {dir("1")},
		"dir/1": {file("a.py")},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := NewBuilder(lister, 1).Build(ctx, "root")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if c != nil {
		t.Fatalf("expected no collection, got %+v", c)
	}
}

func TestSortedDirsIsStable(t *testing.T) {
	entries := []github.Entry{dir("b"), dir("5"), dir("a"), file("1.py"), dir("05-x")}

	got := SortedDirs(entries)
	want := []string{"b", "a", "5", "05-x"}
	if len(got) != len(want) {
		t.Fatalf("expected %d dirs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("position %d = %q, want %q", i, got[i].Name, want[i])
		}
	}
}
