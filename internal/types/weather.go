// Package types provides type definitions for structured data used throughout the outfit recommender.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Accepted temperature range for an observation, in degrees Celsius.
const (
	MinTemperature = -50.0
	MaxTemperature = 50.0
)

// TemperatureCategory buckets a temperature into one of three catalogs.
type TemperatureCategory string

// Temperature category constants.
const (
	CategoryCold     TemperatureCategory = "cold"
	CategoryModerate TemperatureCategory = "moderate"
	CategoryHot      TemperatureCategory = "hot"
)

// AllCategories returns every category from coldest to hottest.
func AllCategories() []TemperatureCategory {
	return []TemperatureCategory{CategoryCold, CategoryModerate, CategoryHot}
}

// ParseCategory converts a case-insensitive name into a TemperatureCategory.
func ParseCategory(s string) (TemperatureCategory, error) {
	c := TemperatureCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown temperature category %q (expected cold, moderate or hot)", s)
}

// Title returns the capitalized display name of the category.
func (c TemperatureCategory) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// WeatherObservation is the user-supplied weather for one recommendation request.
type WeatherObservation struct {
	City               string  `json:"city" yaml:"city"`
	TemperatureCelsius float64 `json:"temperature_celsius" yaml:"temperature_celsius" validate:"gte=-50,lte=50"`
	Condition          string  `json:"condition" yaml:"condition"`
}

// Validate validates the WeatherObservation using the validator.
func (w *WeatherObservation) Validate() error {
	validate := validator.New()
	return validate.Struct(w)
}

// TruncateText cuts s to at most maxRunes runes. A non-positive limit leaves s untouched.
func TruncateText(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
