package entities

import (
	"github.com/google/uuid"
)

// Store is immutable reference data describing a grocery store.
type Store struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	LogoURL  string    `json:"logo_url,omitempty"`
	Location string    `json:"location"`

	Products []*Product `gorm:"foreignKey:StoreID"`
	Timestamp
}

// Product is immutable reference data. Many products may share a name
// across stores; category is compared case-insensitively.
type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID  uuid.UUID `json:"store_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
	Unit     string    `json:"unit"`
	Barcode  *string   `gorm:"uniqueIndex" json:"barcode,omitempty"`

	Store *Store `gorm:"foreignKey:StoreID"`
	Timestamp
}
