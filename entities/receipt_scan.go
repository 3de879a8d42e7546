package entities

import (
	"github.com/google/uuid"
)

type ReceiptScan struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FileName  string    `json:"file_name"`
	ImageURL  string    `json:"image_url,omitempty"`
	Status    string    `json:"status"` // "Pending", "Processed", "Confirmed"
	ItemsJSON string    `json:"items_json,omitempty" gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
