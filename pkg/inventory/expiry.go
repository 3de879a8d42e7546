package inventory

import (
	"Smart-Fridge-Backend/domain"
	"strings"
	"time"
)

// expiringSoonWindow is how far ahead of now an expiry date still
// counts as "expiring soon".
const expiringSoonWindow = 3 * 24 * time.Hour

// ClassifyExpiry derives the expiry status of an ingredient from its
// expiry date and the current time. The status is computed on every
// read and never persisted, so two calls with different now values may
// disagree for the same ingredient.
func ClassifyExpiry(expiryDate *time.Time, now time.Time) domain.ExpiryStatus {
	if expiryDate == nil {
		return domain.ExpiryStatusFresh
	}

	if expiryDate.Before(now) {
		return domain.ExpiryStatusExpired
	}

	if !expiryDate.After(now.Add(expiringSoonWindow)) {
		return domain.ExpiryStatusExpiringSoon
	}

	return domain.ExpiryStatusFresh
}

// ShelfLifeDays maps a product category to the default shelf life used
// when order confirmation stocks a new ingredient. The table is
// intentionally coarse: meat spoils fast, everything else gets two
// weeks.
func ShelfLifeDays(category string) int {
	if strings.EqualFold(strings.TrimSpace(category), "meat") {
		return 5
	}
	return 14
}

// ScanShelfLifeDays is the richer category table used to prefill the
// expiry date when an item enters the inventory through a barcode
// scan.
func ScanShelfLifeDays(category string) int {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "meat", "seafood":
		return 5
	case "dairy":
		return 10
	case "vegetables", "fruits":
		return 7
	case "herbs":
		return 5
	default:
		return 30
	}
}
