package entities

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is one stocked item in the user's kitchen inventory.
// ProductID links back to the originating catalog product when known;
// confirming an order for a product that already has a matching
// ingredient increments that ingredient instead of creating a new row.
// Expiry status is derived on read and never stored.
type Ingredient struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	AddedDate  time.Time  `json:"added_date"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
