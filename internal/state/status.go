package state

import (
	"fmt"

	"github.com/Paintersrp/lcv/internal/cache"
)

// CacheStats is the part of the render cache the status line reads.
type CacheStats interface {
	Len() int
	SizeOf() int64
}

// StatusLine summarizes the repository and render cache for the footer.
func (s *State) StatusLine() string {
	if s == nil || s.Config == nil {
		return ""
	}
	line := s.Config.Repository
	if s.Cache != nil {
		line += " · " + formatCacheStatus(s.Cache)
	}
	return line
}

func formatCacheStatus(stats CacheStats) string {
	if stats == nil {
		return "Cache: unavailable"
	}
	n := stats.Len()
	if n == 0 {
		return "Cache: empty"
	}
	return fmt.Sprintf("Cache: %d rendered · %s", n, cache.ReadableSize(stats.SizeOf()))
}
