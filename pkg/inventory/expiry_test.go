package inventory

import (
	"Smart-Fridge-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExpiry(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name   string
		expiry *time.Time
		want   domain.ExpiryStatus
	}{
		{"no expiry date", nil, domain.ExpiryStatusFresh},
		{"already expired", ptr(now.Add(-time.Hour)), domain.ExpiryStatusExpired},
		{"expires right now", ptr(now), domain.ExpiryStatusExpiringSoon},
		{"expires within window", ptr(now.Add(24 * time.Hour)), domain.ExpiryStatusExpiringSoon},
		{"expires exactly at window edge", ptr(now.Add(3 * 24 * time.Hour)), domain.ExpiryStatusExpiringSoon},
		{"expires just past window", ptr(now.Add(3*24*time.Hour + time.Second)), domain.ExpiryStatusFresh},
		{"expires far in the future", ptr(now.AddDate(0, 1, 0)), domain.ExpiryStatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiry(tt.expiry, now))
		})
	}
}

func TestShelfLifeDays(t *testing.T) {
	assert.Equal(t, 5, ShelfLifeDays("Meat"))
	assert.Equal(t, 5, ShelfLifeDays("meat"))
	assert.Equal(t, 5, ShelfLifeDays(" MEAT "))
	assert.Equal(t, 14, ShelfLifeDays("Dairy"))
	assert.Equal(t, 14, ShelfLifeDays("Seafood"))
	assert.Equal(t, 14, ShelfLifeDays(""))
}

func TestScanShelfLifeDays(t *testing.T) {
	assert.Equal(t, 5, ScanShelfLifeDays("Meat"))
	assert.Equal(t, 5, ScanShelfLifeDays("Seafood"))
	assert.Equal(t, 10, ScanShelfLifeDays("Dairy"))
	assert.Equal(t, 7, ScanShelfLifeDays("Vegetables"))
	assert.Equal(t, 7, ScanShelfLifeDays("Fruits"))
	assert.Equal(t, 5, ScanShelfLifeDays("Herbs"))
	assert.Equal(t, 30, ScanShelfLifeDays("Packaged"))
	assert.Equal(t, 30, ScanShelfLifeDays(""))
}
