package problems

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Paintersrp/lcv/internal/github"
	"github.com/Paintersrp/lcv/internal/logging"
)

// Lister lists the entries of a collection address.
type Lister interface {
	ListEntries(ctx context.Context, address string) ([]github.Entry, error)
}

// Builder produces a Collection from a repository listing.
type Builder struct {
	lister      Lister
	concurrency int

	// OnVisit, when set, is called with each directory entry in the order the
	// builder starts processing them.
	OnVisit func(github.Entry)
}

// NewBuilder returns a Builder that runs at most concurrency folder listings
// at once. Values below 1 mean sequential.
func NewBuilder(lister Lister, concurrency int) *Builder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Builder{lister: lister, concurrency: concurrency}
}

// Build lists the repository root, then every directory in numeric order of
// its name, and returns the problems that have at least one recognized file.
// A root listing failure aborts the build; folder failures only drop that
// folder. Nothing is returned until every folder has been handled.
func (b *Builder) Build(ctx context.Context, rootAddress string) (Collection, error) {
	start := time.Now()

	entries, err := b.lister.ListEntries(ctx, rootAddress)
	if err != nil {
		return nil, fmt.Errorf("list repository root: %w", err)
	}

	dirs := SortedDirs(entries)
	slots := make([]*Problem, len(dirs))

	// Visit order is decided here, before any goroutine starts.
	if b.OnVisit != nil {
		for _, dir := range dirs {
			b.OnVisit(dir)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			if p, ok := b.folder(gctx, dir); ok {
				slots[i] = &p
			}
			return nil
		})
	}
	// Folder failures are swallowed, so Wait only reports nil.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build collection: %w", err)
	}

	out := make(Collection, 0, len(slots))
	for _, p := range slots {
		if p != nil {
			out = append(out, *p)
		}
	}

	logging.Info("collection built",
		logging.Int("dirs", len(dirs)),
		logging.Int("problems", len(out)),
		logging.Duration("duration", time.Since(start)))

	return out, nil
}

func (b *Builder) folder(ctx context.Context, dir github.Entry) (Problem, bool) {
	children, err := b.lister.ListEntries(ctx, dir.URL)
	if err != nil {
		logging.Warn("skipping folder",
			logging.String("folder", dir.Name),
			logging.Err(err))
		return Problem{}, false
	}
	return NormalizeFolder(dir, children)
}

// SortedDirs returns the directory entries of a listing, stably sorted by the
// numeric key of their names.
func SortedDirs(entries []github.Entry) []github.Entry {
	dirs := make([]github.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		}
	}
	sort.SliceStable(dirs, func(i, j int) bool {
		return NumericKey(dirs[i].Name) < NumericKey(dirs[j].Name)
	})
	return dirs
}
