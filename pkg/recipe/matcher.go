package recipe

import (
	"Smart-Fridge-Backend/entities"
	"strings"
)

// FindMatch resolves an ingredient name to a catalog product. Names
// are compared case-insensitively after trimming. Exact matches win
// over substring matches, and within each pass the first product in
// catalog order wins, so results are deterministic for a fixed
// catalog.
func FindMatch(name string, products []*entities.Product) (*entities.Product, bool) {
	needle := normalize(name)
	if needle == "" {
		return nil, false
	}

	for _, product := range products {
		if normalize(product.Name) == needle {
			return product, true
		}
	}

	for _, product := range products {
		candidate := normalize(product.Name)
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return product, true
		}
	}

	return nil, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
