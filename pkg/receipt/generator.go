package receipt

import "Smart-Fridge-Backend/domain"

// commonItems is the pool the mock OCR pipeline draws from. Order
// matters: item selection indexes into this slice.
var commonItems = []domain.ExtractedItem{
	{Name: "Milk", Quantity: 1, Unit: "bottle"},
	{Name: "Eggs", Quantity: 12, Unit: "piece"},
	{Name: "Bread", Quantity: 1, Unit: "loaf"},
	{Name: "Chicken Breast", Quantity: 500, Unit: "g"},
	{Name: "Bananas", Quantity: 6, Unit: "piece"},
	{Name: "Tomatoes", Quantity: 4, Unit: "piece"},
	{Name: "Rice", Quantity: 1, Unit: "kg"},
	{Name: "Pasta", Quantity: 1, Unit: "pack"},
	{Name: "Cheese", Quantity: 200, Unit: "g"},
	{Name: "Yogurt", Quantity: 4, Unit: "pack"},
	{Name: "Apples", Quantity: 5, Unit: "piece"},
	{Name: "Potatoes", Quantity: 1, Unit: "kg"},
	{Name: "Onions", Quantity: 3, Unit: "piece"},
	{Name: "Cereal", Quantity: 1, Unit: "box"},
	{Name: "Orange Juice", Quantity: 1, Unit: "bottle"},
	{Name: "Coffee", Quantity: 1, Unit: "pack"},
	{Name: "Tea", Quantity: 1, Unit: "box"},
	{Name: "Sugar", Quantity: 1, Unit: "kg"},
	{Name: "Salt", Quantity: 1, Unit: "pack"},
	{Name: "Pepper", Quantity: 1, Unit: "pack"},
	{Name: "Olive Oil", Quantity: 1, Unit: "bottle"},
	{Name: "Butter", Quantity: 1, Unit: "pack"},
	{Name: "Carrots", Quantity: 1, Unit: "pack"},
	{Name: "Spinach", Quantity: 1, Unit: "bag"},
	{Name: "Garlic", Quantity: 1, Unit: "pack"},
	{Name: "Tofu", Quantity: 1, Unit: "pack"},
	{Name: "Soy Sauce", Quantity: 1, Unit: "bottle"},
	{Name: "Honey", Quantity: 1, Unit: "jar"},
	{Name: "Peanut Butter", Quantity: 1, Unit: "jar"},
	{Name: "Jam", Quantity: 1, Unit: "jar"},
}

// GenerateItems simulates OCR extraction from a receipt image. The
// filename seeds a linear congruential generator, so the same file
// always yields the same 3 to 8 distinct items, with some quantities
// nudged for variety.
func GenerateItems(filename string) []domain.ExtractedItem {
	rng := newSeededRand(seedFromFilename(filename))

	numItems := int(rng()*6) + 3

	selected := make([]domain.ExtractedItem, 0, numItems)
	used := make(map[int]bool, numItems)

	for len(selected) < numItems {
		index := int(rng() * float64(len(commonItems)))
		if used[index] {
			continue
		}
		used[index] = true

		item := commonItems[index]
		if rng() > 0.7 {
			adjusted := int(item.Quantity * (0.5 + rng()))
			if adjusted < 1 {
				adjusted = 1
			}
			item.Quantity = float64(adjusted)
		}
		selected = append(selected, item)
	}

	return selected
}

func seedFromFilename(filename string) int64 {
	var seed int64
	for _, r := range filename {
		seed += int64(r)
	}
	return seed
}

// newSeededRand returns a closure over a small linear congruential
// generator. Each call yields a value in [0, 1).
func newSeededRand(seed int64) func() float64 {
	return func() float64 {
		seed = (seed*9301 + 49297) % 233280
		return float64(seed) / 233280
	}
}
