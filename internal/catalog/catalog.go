package catalog

import (
	"fmt"
	"strings"

	"github.com/jonathan/outfit-recommender/internal/schemas"
	"github.com/jonathan/outfit-recommender/internal/types"
)

// Catalog maps each temperature category to its bucket of menus.
// A Catalog is read-only once built; callers get copies of buckets.
type Catalog struct {
	buckets map[types.TemperatureCategory]types.CatalogBucket
}

// New builds a catalog from explicit buckets. It does not validate; call Validate.
func New(buckets map[types.TemperatureCategory]types.CatalogBucket) *Catalog {
	owned := make(map[types.TemperatureCategory]types.CatalogBucket, len(buckets))
	for k, v := range buckets {
		owned[k] = v
	}
	return &Catalog{buckets: owned}
}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	return New(map[types.TemperatureCategory]types.CatalogBucket{
		types.CategoryCold:     coldBucket,
		types.CategoryModerate: moderateBucket,
		types.CategoryHot:      hotBucket,
	})
}

// Bucket returns the menus for a category.
func (c *Catalog) Bucket(category types.TemperatureCategory) (types.CatalogBucket, error) {
	bucket, ok := c.buckets[category]
	if !ok {
		return types.CatalogBucket{}, &MalformedCatalogError{
			Message: fmt.Sprintf("no bucket for category %q", category),
		}
	}
	return bucket, nil
}

// Buckets returns every bucket keyed by category name, in the shape of the catalog schema.
func (c *Catalog) Buckets() map[types.TemperatureCategory]types.CatalogBucket {
	out := make(map[types.TemperatureCategory]types.CatalogBucket, len(c.buckets))
	for k, v := range c.buckets {
		out[k] = v
	}
	return out
}

// Validate checks that every category has a complete bucket and that the
// catalog's JSON form satisfies the catalog schema.
func (c *Catalog) Validate() error {
	for _, category := range types.AllCategories() {
		bucket, err := c.Bucket(category)
		if err != nil {
			return err
		}
		if err := checkBucket(category, &bucket); err != nil {
			return err
		}
	}

	if err := schemas.ValidateValue(schemas.CatalogSchema, c.buckets); err != nil {
		return &MalformedCatalogError{Message: "catalog does not match schema", Cause: err}
	}

	return nil
}

func checkBucket(category types.TemperatureCategory, bucket *types.CatalogBucket) error {
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	for i, outfit := range bucket.Outfits {
		if blank(outfit.Title) {
			return &MalformedCatalogError{Message: fmt.Sprintf("%s outfit %d has no title", category, i+1)}
		}
		for j, item := range outfit.Items {
			if blank(item) {
				return &MalformedCatalogError{
					Message: fmt.Sprintf("%s outfit %q item %d is empty", category, outfit.Title, j+1),
				}
			}
		}
	}

	menus := []struct {
		name    string
		entries [types.MenuSize]string
	}{
		{"accessory", bucket.Accessories},
		{"shoe", bucket.Shoes},
		{"jacket", bucket.Jackets},
	}
	for _, menu := range menus {
		for i, entry := range menu.entries {
			if blank(entry) {
				return &MalformedCatalogError{Message: fmt.Sprintf("%s %s %d is empty", category, menu.name, i+1)}
			}
		}
	}

	return nil
}
