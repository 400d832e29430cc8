//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Star rating bounds.
const (
	MinStars = 1
	MaxStars = 5
)

// RatingDateLayout is the calendar date format stored on ratings.
const RatingDateLayout = "2006-01-02"

// RatingEntry is a user-submitted score for an outfit.
type RatingEntry struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	OutfitTitle string    `json:"outfit_title" yaml:"outfit_title" validate:"required"`
	Stars       int       `json:"stars" yaml:"stars" validate:"min=1,max=5"`
	Feedback    string    `json:"feedback,omitempty" yaml:"feedback,omitempty"`
	Date        string    `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
}

// Validate validates the RatingEntry using the validator.
func (r *RatingEntry) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
