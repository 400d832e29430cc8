//nolint:revive // types is a standard Go package name pattern
package types

// Fixed menu dimensions shared by every catalog bucket.
const (
	MenuSize        = 5
	OutfitItemCount = 3
)

// OutfitDefinition is a named combination of three garment pieces.
type OutfitDefinition struct {
	Title string                  `json:"title" yaml:"title"`
	Items [OutfitItemCount]string `json:"items" yaml:"items"`
}

// CatalogBucket holds the four menus offered for one temperature category.
type CatalogBucket struct {
	Outfits     [MenuSize]OutfitDefinition `json:"outfits" yaml:"outfits"`
	Accessories [MenuSize]string           `json:"accessories" yaml:"accessories"`
	Shoes       [MenuSize]string           `json:"shoes" yaml:"shoes"`
	Jackets     [MenuSize]string           `json:"jackets" yaml:"jackets"`
}

// RecommendationSelection is the resolved outfit plus one pick from each side menu.
type RecommendationSelection struct {
	Outfit    OutfitDefinition `json:"outfit" yaml:"outfit"`
	Accessory string           `json:"accessory" yaml:"accessory"`
	Shoe      string           `json:"shoe" yaml:"shoe"`
	Jacket    string           `json:"jacket" yaml:"jacket"`
}
