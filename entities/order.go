package entities

import (
	"github.com/google/uuid"
)

// Order is one line of the user's shopping list. Name, price, unit and
// store are denormalized at add-time and not re-synced if the product
// changes later. At most one order exists per product per user; adding
// the same product again increments the existing row.
type Order struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
