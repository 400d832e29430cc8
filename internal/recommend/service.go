package recommend

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/outfit-recommender/internal/catalog"
	"github.com/jonathan/outfit-recommender/internal/classifier"
	"github.com/jonathan/outfit-recommender/internal/history"
	"github.com/jonathan/outfit-recommender/internal/rating"
	"github.com/jonathan/outfit-recommender/internal/selection"
	"github.com/jonathan/outfit-recommender/internal/types"
)

// Service produces recommendations and owns references to the process-lifetime stores.
type Service struct {
	catalog       *catalog.Catalog
	picker        *selection.Picker
	history       *history.Store
	ratings       *rating.Store
	now           func() time.Time
	maxTextLength int
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps and rating dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMaxTextLength truncates free text (city, condition, note, mood, feedback)
// to n runes. Zero keeps text unbounded.
func WithMaxTextLength(n int) Option {
	return func(s *Service) {
		s.maxTextLength = n
	}
}

// NewService wires a Service from its collaborators.
func NewService(cat *catalog.Catalog, picker *selection.Picker, hist *history.Store, ratings *rating.Store, opts ...Option) *Service {
	s := &Service{
		catalog: cat,
		picker:  picker,
		history: hist,
		ratings: ratings,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Category classifies a temperature.
func (s *Service) Category(tempC float64) types.TemperatureCategory {
	return classifier.Classify(tempC)
}

// Bucket returns the menus for a category.
func (s *Service) Bucket(category types.TemperatureCategory) (types.CatalogBucket, error) {
	return s.catalog.Bucket(category)
}

// Submit runs one recommendation: it classifies the observation, resolves the
// four choices against the matching bucket and records the result in history.
func (s *Service) Submit(obs types.WeatherObservation, choices selection.Choices, note, mood string) (*types.RecommendationSelection, error) {
	obs.City = s.clean(obs.City)
	obs.Condition = s.clean(obs.Condition)
	if err := obs.Validate(); err != nil {
		return nil, &Error{Message: "invalid weather observation", Cause: err}
	}

	category := classifier.Classify(obs.TemperatureCelsius)
	bucket, err := s.catalog.Bucket(category)
	if err != nil {
		return nil, &Error{Message: "failed to resolve catalog bucket", Cause: err}
	}

	idx, err := s.picker.PickAll(choices)
	if err != nil {
		return nil, &Error{Message: "failed to resolve choices", Cause: err}
	}

	sel, err := selection.BuildSelection(&bucket, idx)
	if err != nil {
		return nil, &Error{Message: "failed to build selection", Cause: err}
	}

	s.history.Record(types.HistoryEntry{
		ID:        uuid.New(),
		Selection: sel,
		Weather:   obs,
		UserNote:  s.clean(note),
		Mood:      s.clean(mood),
		CreatedAt: s.now(),
	})

	return &sel, nil
}

// Rate records a star rating for an outfit dated today. A full rating store
// yields an error wrapping rating.ErrStoreFull; callers treat it as a notice.
func (s *Service) Rate(outfitTitle string, stars int, feedback string) (*types.RatingEntry, error) {
	entry := types.RatingEntry{
		ID:          uuid.New(),
		OutfitTitle: strings.TrimSpace(outfitTitle),
		Stars:       stars,
		Feedback:    s.clean(feedback),
		Date:        s.now().Format(types.RatingDateLayout),
	}
	if err := entry.Validate(); err != nil {
		return nil, &Error{Message: "invalid rating", Cause: err}
	}

	if err := s.ratings.Record(entry); err != nil {
		return nil, &Error{Message: "rating not saved", Cause: err}
	}
	return &entry, nil
}

// History returns the retained recommendations, oldest first.
func (s *Service) History() []types.HistoryEntry {
	return s.history.List()
}

// HistoryCapacity returns how many recommendations history retains.
func (s *Service) HistoryCapacity() int {
	return s.history.Cap()
}

// Ratings returns all ratings in the order they were given.
func (s *Service) Ratings() []types.RatingEntry {
	return s.ratings.List()
}

// AverageRating returns the mean stars and rating count for an outfit.
func (s *Service) AverageRating(outfitTitle string) (float64, int) {
	return s.ratings.AverageFor(outfitTitle)
}

func (s *Service) clean(text string) string {
	return types.TruncateText(strings.TrimSpace(text), s.maxTextLength)
}
