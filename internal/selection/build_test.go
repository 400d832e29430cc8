package selection

import (
	"testing"

	"github.com/jonathan/outfit-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBucket() types.CatalogBucket {
	var b types.CatalogBucket
	for i := 0; i < types.MenuSize; i++ {
		n := string(rune('A' + i))
		b.Outfits[i] = types.OutfitDefinition{
			Title: "Outfit " + n,
			Items: [types.OutfitItemCount]string{"Top " + n, "Bottom " + n, "Layer " + n},
		}
		b.Accessories[i] = "Accessory " + n
		b.Shoes[i] = "Shoe " + n
		b.Jackets[i] = "Jacket " + n
	}
	return b
}

func TestBuildSelection(t *testing.T) {
	bucket := testBucket()

	sel, err := BuildSelection(&bucket, Indices{Outfit: 4, Accessory: 0, Shoe: 2, Jacket: 1})
	require.NoError(t, err)

	assert.Equal(t, "Outfit E", sel.Outfit.Title)
	assert.Equal(t, [3]string{"Top E", "Bottom E", "Layer E"}, sel.Outfit.Items)
	assert.Equal(t, "Accessory A", sel.Accessory)
	assert.Equal(t, "Shoe C", sel.Shoe)
	assert.Equal(t, "Jacket B", sel.Jacket)
}

func TestBuildSelection_OutOfRange(t *testing.T) {
	bucket := testBucket()

	_, err := BuildSelection(&bucket, Indices{Jacket: types.MenuSize})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jacket index 5 out of range")

	_, err = BuildSelection(&bucket, Indices{Outfit: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outfit index -1")
}
