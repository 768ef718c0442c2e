// Package filter derives the visible, ordered subset of a Collection from a
// search query and a sort direction.
package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Paintersrp/lcv/internal/problems"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
	// Latest keeps the collection's fetch order.
	Latest
)

var ErrInvalidDirection = errors.New("invalid sort direction")

func (d Direction) String() string {
	switch d {
	case Descending:
		return "descending"
	case Latest:
		return "latest"
	}
	return "ascending"
}

// Toggle returns the opposite direction. Latest toggles to Descending, as if
// it were Ascending.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts asc, ascending, desc, descending and latest.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	case "latest":
		return Latest, nil
	}
	return Ascending, fmt.Errorf("%w: %q (use asc, desc or latest)", ErrInvalidDirection, s)
}

// Matches reports whether query is a case-insensitive substring of the
// problem's display name or folder name.
func Matches(p problems.Problem, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.DisplayName), q) ||
		strings.Contains(strings.ToLower(p.Name), q)
}

// Apply returns the problems of c matching query, stably ordered by their
// numeric key in the given direction. Latest leaves them in collection order.
// c is not modified.
func Apply(c problems.Collection, query string, dir Direction) []problems.Problem {
	out := make([]problems.Problem, 0, len(c))
	for _, p := range c {
		if Matches(p, query) {
			out = append(out, p)
		}
	}

	if dir == Latest {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := out[i].Key(), out[j].Key()
		if dir == Descending {
			return ki > kj
		}
		return ki < kj
	})

	return out
}
