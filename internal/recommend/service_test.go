package recommend

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/outfit-recommender/internal/catalog"
	"github.com/jonathan/outfit-recommender/internal/history"
	"github.com/jonathan/outfit-recommender/internal/rating"
	"github.com/jonathan/outfit-recommender/internal/selection"
	"github.com/jonathan/outfit-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)

func newTestService(opts ...Option) *Service {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(
		catalog.Default(),
		selection.NewPicker(1),
		history.NewStore(history.DefaultCapacity),
		rating.NewStore(rating.DefaultCapacity),
		opts...,
	)
}

func firstOfEach() selection.Choices {
	return selection.Choices{
		Outfit:    selection.Explicit(1),
		Accessory: selection.Explicit(1),
		Shoe:      selection.Explicit(1),
		Jacket:    selection.Explicit(1),
	}
}

func TestSubmit_ColdScenario(t *testing.T) {
	svc := newTestService()
	obs := types.WeatherObservation{City: "Oslo", TemperatureCelsius: 5.0, Condition: "Snowy"}

	sel, err := svc.Submit(obs, firstOfEach(), "", "")
	require.NoError(t, err)

	assert.Equal(t, "Winter Warrior", sel.Outfit.Title)
	assert.Equal(t, [3]string{"Trench Coat", "Corduroy Pants", "Turtleneck"}, sel.Outfit.Items)
	assert.Equal(t, "Wool Scarf", sel.Accessory)
	assert.Equal(t, "Waterproof Boots", sel.Shoe)
	assert.Equal(t, "Thermal Jacket", sel.Jacket)

	hist := svc.History()
	require.Len(t, hist, 1)
	assert.Equal(t, *sel, hist[0].Selection)
	assert.Equal(t, obs, hist[0].Weather)
	assert.Empty(t, hist[0].UserNote)
	assert.Empty(t, hist[0].Mood)
	assert.Equal(t, fixedNow, hist[0].CreatedAt)
	assert.NotEqual(t, uuid.Nil, hist[0].ID)
}

func TestSubmit_CategoryBoundaries(t *testing.T) {
	tests := []struct {
		temp  float64
		title string
	}{
		{22.0, "Smart Casual"},
		{30.0, "Smart Casual"},
		{15.0, "Smart Casual"},
		{31.0, "Summer Cool"},
		{14.9, "Winter Warrior"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.temp), func(t *testing.T) {
			sel, err := newTestService().Submit(types.WeatherObservation{TemperatureCelsius: tt.temp}, firstOfEach(), "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.title, sel.Outfit.Title)
		})
	}
}

func TestSubmit_ExplicitChoices(t *testing.T) {
	svc := newTestService()
	sel, err := svc.Submit(types.WeatherObservation{TemperatureCelsius: 35}, selection.Choices{
		Outfit:    selection.Explicit(2),
		Accessory: selection.Explicit(4),
		Shoe:      selection.Explicit(3),
		Jacket:    selection.Explicit(5),
	}, "", "")
	require.NoError(t, err)

	assert.Equal(t, "Beach Ready", sel.Outfit.Title)
	assert.Equal(t, "Portable Fan", sel.Accessory)
	assert.Equal(t, "Mesh Sneakers", sel.Shoe)
	assert.Equal(t, "Cotton Kimono", sel.Jacket)
}

func TestSubmit_SurpriseDrawsFromBucket(t *testing.T) {
	svc := newTestService()
	bucket, err := svc.Bucket(types.CategoryModerate)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		sel, err := svc.Submit(types.WeatherObservation{TemperatureCelsius: 20}, selection.SurpriseAll(), "", "")
		require.NoError(t, err)
		assert.Contains(t, bucket.Outfits, sel.Outfit)
		assert.Contains(t, bucket.Accessories, sel.Accessory)
		assert.Contains(t, bucket.Shoes, sel.Shoe)
		assert.Contains(t, bucket.Jackets, sel.Jacket)
	}
}

func TestSubmit_NoteAndMoodAreTrimmed(t *testing.T) {
	svc := newTestService()
	_, err := svc.Submit(types.WeatherObservation{City: "  Lima ", TemperatureCelsius: 18, Condition: " Cloudy"},
		firstOfEach(), "  job interview ", "nervous\n")
	require.NoError(t, err)

	entry := svc.History()[0]
	assert.Equal(t, "Lima", entry.Weather.City)
	assert.Equal(t, "Cloudy", entry.Weather.Condition)
	assert.Equal(t, "job interview", entry.UserNote)
	assert.Equal(t, "nervous", entry.Mood)
}

func TestSubmit_MaxTextLength(t *testing.T) {
	svc := newTestService(WithMaxTextLength(4))
	_, err := svc.Submit(types.WeatherObservation{City: "Reykjavik", TemperatureCelsius: 2, Condition: "Windy"},
		firstOfEach(), "a long note", "")
	require.NoError(t, err)

	entry := svc.History()[0]
	assert.Equal(t, "Reyk", entry.Weather.City)
	assert.Equal(t, "Wind", entry.Weather.Condition)
	assert.Equal(t, "a lo", entry.UserNote)
}

func TestSubmit_InvalidTemperature(t *testing.T) {
	svc := newTestService()
	_, err := svc.Submit(types.WeatherObservation{TemperatureCelsius: 51}, firstOfEach(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weather observation")
	assert.Empty(t, svc.History())
}

func TestSubmit_InvalidChoiceRecordsNothing(t *testing.T) {
	svc := newTestService()
	choices := firstOfEach()
	choices.Jacket = selection.Explicit(6)

	_, err := svc.Submit(types.WeatherObservation{TemperatureCelsius: 10}, choices, "", "")
	require.Error(t, err)

	var invalid *selection.InvalidChoiceError
	assert.True(t, errors.As(err, &invalid))
	assert.Empty(t, svc.History())
}

func TestSubmit_MissingBucket(t *testing.T) {
	buckets := catalog.Default().Buckets()
	delete(buckets, types.CategoryHot)
	svc := NewService(catalog.New(buckets), selection.NewPicker(1),
		history.NewStore(5), rating.NewStore(100))

	_, err := svc.Submit(types.WeatherObservation{TemperatureCelsius: 40}, firstOfEach(), "", "")
	require.Error(t, err)

	var malformed *catalog.MalformedCatalogError
	assert.True(t, errors.As(err, &malformed))
}

func TestSubmit_HistoryRollsOver(t *testing.T) {
	svc := newTestService()
	for i := 0; i < 7; i++ {
		_, err := svc.Submit(types.WeatherObservation{City: fmt.Sprintf("E%d", i), TemperatureCelsius: 20}, firstOfEach(), "", "")
		require.NoError(t, err)
	}

	hist := svc.History()
	require.Len(t, hist, 5)
	cities := make([]string, len(hist))
	for i, h := range hist {
		cities[i] = h.Weather.City
	}
	assert.Equal(t, []string{"E2", "E3", "E4", "E5", "E6"}, cities)
}

func TestRate(t *testing.T) {
	svc := newTestService()
	entry, err := svc.Rate("Winter Warrior", 4, "  cozy ")
	require.NoError(t, err)

	assert.Equal(t, "Winter Warrior", entry.OutfitTitle)
	assert.Equal(t, 4, entry.Stars)
	assert.Equal(t, "cozy", entry.Feedback)
	assert.Equal(t, "2026-01-15", entry.Date)

	ratings := svc.Ratings()
	require.Len(t, ratings, 1)
	assert.Equal(t, *entry, ratings[0])

	avg, n := svc.AverageRating("Winter Warrior")
	assert.Equal(t, 1, n)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestRate_InvalidStars(t *testing.T) {
	svc := newTestService()
	for _, stars := range []int{0, 6, -1} {
		_, err := svc.Rate("Winter Warrior", stars, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid rating")
	}
	assert.Empty(t, svc.Ratings())
}

func TestRate_StoreFull(t *testing.T) {
	svc := newTestService()
	for i := 0; i < rating.DefaultCapacity; i++ {
		_, err := svc.Rate(fmt.Sprintf("Outfit %d", i), 3, "")
		require.NoError(t, err)
	}

	_, err := svc.Rate("Outfit 100", 5, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rating.ErrStoreFull))

	ratings := svc.Ratings()
	require.Len(t, ratings, rating.DefaultCapacity)
	for i, r := range ratings {
		assert.Equal(t, fmt.Sprintf("Outfit %d", i), r.OutfitTitle)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Message: "rating not saved", Cause: cause}
	assert.Equal(t, "recommend error: rating not saved: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "recommend error: plain", (&Error{Message: "plain"}).Error())
}
