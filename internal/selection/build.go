package selection

import (
	"fmt"

	"github.com/jonathan/outfit-recommender/internal/types"
)

// BuildSelection assembles a selection from resolved menu indices.
func BuildSelection(bucket *types.CatalogBucket, idx Indices) (types.RecommendationSelection, error) {
	for name, i := range map[string]int{
		"outfit":    idx.Outfit,
		"accessory": idx.Accessory,
		"shoe":      idx.Shoe,
		"jacket":    idx.Jacket,
	} {
		if i < 0 || i >= types.MenuSize {
			return types.RecommendationSelection{}, &Error{
				Message: fmt.Sprintf("%s index %d out of range [0, %d)", name, i, types.MenuSize),
			}
		}
	}

	return types.RecommendationSelection{
		Outfit:    bucket.Outfits[idx.Outfit],
		Accessory: bucket.Accessories[idx.Accessory],
		Shoe:      bucket.Shoes[idx.Shoe],
		Jacket:    bucket.Jackets[idx.Jacket],
	}, nil
}
