//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one completed recommendation transaction.
type HistoryEntry struct {
	ID        uuid.UUID               `json:"id" yaml:"id"`
	Selection RecommendationSelection `json:"selection" yaml:"selection"`
	Weather   WeatherObservation      `json:"weather" yaml:"weather"`
	UserNote  string                  `json:"user_note,omitempty" yaml:"user_note,omitempty"`
	Mood      string                  `json:"mood,omitempty" yaml:"mood,omitempty"`
	CreatedAt time.Time               `json:"created_at" yaml:"created_at"`
}
