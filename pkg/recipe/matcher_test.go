package recipe

import (
	"Smart-Fridge-Backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func products(names ...string) []*entities.Product {
	result := make([]*entities.Product, 0, len(names))
	for _, name := range names {
		result = append(result, &entities.Product{Name: name})
	}
	return result
}

func TestFindMatchExactWinsOverSubstring(t *testing.T) {
	catalog := products("Chicken Breast", "Chicken")

	match, ok := FindMatch("Chicken", catalog)
	require.True(t, ok)
	assert.Equal(t, "Chicken", match.Name)
}

func TestFindMatchIsCaseInsensitiveAndTrims(t *testing.T) {
	catalog := products("Rice Noodles")

	match, ok := FindMatch("  rice noodles ", catalog)
	require.True(t, ok)
	assert.Equal(t, "Rice Noodles", match.Name)
}

func TestFindMatchSubstringBothDirections(t *testing.T) {
	catalog := products("Coconut Milk")

	// ingredient name contained in product name
	match, ok := FindMatch("Coconut", catalog)
	require.True(t, ok)
	assert.Equal(t, "Coconut Milk", match.Name)

	// product name contained in ingredient name
	match, ok = FindMatch("Fresh Coconut Milk", catalog)
	require.True(t, ok)
	assert.Equal(t, "Coconut Milk", match.Name)
}

func TestFindMatchFirstInCatalogOrderWins(t *testing.T) {
	catalog := products("Milk", "Soy Milk")

	match, ok := FindMatch("milky oats", catalog)
	require.True(t, ok)
	assert.Equal(t, "Milk", match.Name)
}

func TestFindMatchNoMatch(t *testing.T) {
	catalog := products("Milk", "Eggs")

	_, ok := FindMatch("Saffron", catalog)
	assert.False(t, ok)

	_, ok = FindMatch("   ", catalog)
	assert.False(t, ok)
}
