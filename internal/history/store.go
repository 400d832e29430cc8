// Package history keeps a fixed-size rolling log of past recommendations.
package history

import (
	"sync"

	"github.com/jonathan/outfit-recommender/internal/types"
)

// DefaultCapacity is the number of recommendations kept by the recommender.
const DefaultCapacity = 5

// Store is a circular buffer of history entries. Once full, each new entry
// replaces the oldest one, so the store always holds the most recent entries.
type Store struct {
	mu      sync.Mutex
	entries []types.HistoryEntry
	next    int
	count   int
}

// NewStore returns an empty store holding at most capacity entries.
// Capacities below one fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{entries: make([]types.HistoryEntry, capacity)}
}

// Record writes entry at the cursor, overwriting the oldest entry when full.
func (s *Store) Record(entry types.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.next] = entry
	s.next = (s.next + 1) % len(s.entries)
	if s.count < len(s.entries) {
		s.count++
	}
}

// List returns a copy of the retained entries, oldest first.
func (s *Store) List() []types.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.HistoryEntry, 0, s.count)
	start := (s.next - s.count + len(s.entries)) % len(s.entries)
	for i := 0; i < s.count; i++ {
		out = append(out, s.entries[(start+i)%len(s.entries)])
	}
	return out
}

// IsEmpty reports whether nothing has been recorded.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Cap returns the maximum number of retained entries.
func (s *Store) Cap() int {
	return len(s.entries)
}
