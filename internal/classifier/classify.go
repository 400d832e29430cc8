// Package classifier maps temperatures onto catalog categories.
package classifier

import "github.com/jonathan/outfit-recommender/internal/types"

// Category thresholds in degrees Celsius. Both bounds belong to the moderate band.
const (
	ColdBelow = 15.0
	HotAbove  = 30.0
)

// Classify returns the category for tempC. It accepts any float; range checks
// belong to the input layer. NaN fails both comparisons and classifies as hot.
func Classify(tempC float64) types.TemperatureCategory {
	switch {
	case tempC < ColdBelow:
		return types.CategoryCold
	case tempC <= HotAbove:
		return types.CategoryModerate
	default:
		return types.CategoryHot
	}
}
