package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateItemsIsDeterministic(t *testing.T) {
	first := GenerateItems("receipt-2026-08-30.jpg")
	second := GenerateItems("receipt-2026-08-30.jpg")

	assert.Equal(t, first, second)
}

func TestGenerateItemsCountAndDistinctness(t *testing.T) {
	filenames := []string{
		"a.jpg",
		"groceries.png",
		"IMG_20260830_121501.jpg",
		"scan (1).jpeg",
		"lotus-receipt.webp",
	}

	for _, filename := range filenames {
		items := GenerateItems(filename)

		require.GreaterOrEqual(t, len(items), 3, filename)
		require.LessOrEqual(t, len(items), 8, filename)

		seen := map[string]bool{}
		for _, item := range items {
			assert.False(t, seen[item.Name], "duplicate item %q for %s", item.Name, filename)
			seen[item.Name] = true

			assert.GreaterOrEqual(t, item.Quantity, float64(1), filename)
			assert.NotEmpty(t, item.Unit, filename)
		}
	}
}

func TestGenerateItemsVariesWithFilename(t *testing.T) {
	first := GenerateItems("monday.jpg")
	second := GenerateItems("tuesday-market.png")

	assert.NotEqual(t, first, second)
}
