// Package rating keeps an append-only, capacity-bounded log of outfit ratings.
package rating

import (
	"errors"
	"sync"

	"github.com/jonathan/outfit-recommender/internal/types"
)

// DefaultCapacity is the number of ratings accepted per process.
const DefaultCapacity = 100

// ErrStoreFull is returned once the store has reached capacity. It is not retryable.
var ErrStoreFull = errors.New("rating store is full")

// Store is an append-only rating log. Entries are never overwritten or reordered.
type Store struct {
	mu       sync.Mutex
	entries  []types.RatingEntry
	capacity int
}

// NewStore returns an empty store accepting at most capacity entries.
// Capacities below one fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{entries: make([]types.RatingEntry, 0, capacity), capacity: capacity}
}

// Record appends entry, or returns ErrStoreFull and leaves the store unchanged.
func (s *Store) Record(entry types.RatingEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.capacity {
		return ErrStoreFull
	}
	s.entries = append(s.entries, entry)
	return nil
}

// List returns a copy of all entries in insertion order.
func (s *Store) List() []types.RatingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.RatingEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// IsEmpty reports whether no rating has been recorded.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of stored ratings.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cap returns the maximum number of ratings.
func (s *Store) Cap() int {
	return s.capacity
}

// AverageFor returns the mean star rating for an outfit title and how many
// ratings contributed. It returns (0, 0) when the title was never rated.
func (s *Store) AverageFor(title string) (float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, n := 0, 0
	for _, e := range s.entries {
		if e.OutfitTitle == title {
			total += e.Stars
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return float64(total) / float64(n), n
}
