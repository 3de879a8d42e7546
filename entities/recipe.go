package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Timestamp
}

// RecipeIngredient is a requirement line within a recipe, kept in
// insertion order via Position.
type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Position int       `json:"position"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
