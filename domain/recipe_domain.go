package domain

import "errors"

var (
	MessageSuccessGetRecipes = "recipe recommendations retrieved successfully"
	MessageSuccessFillOrder  = "missing ingredients added to order"

	MessageFailedGetRecipes = "failed to retrieve recipe recommendations"
	MessageFailedFillOrder  = "failed to add missing ingredients to order"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipeIngredientResponse struct {
		Name      string  `json:"name"`
		Quantity  float64 `json:"quantity"`
		Unit      string  `json:"unit"`
		Available bool    `json:"available"`
		// Substitute identifies a store product that matches this
		// ingredient when it is missing from the inventory.
		Substitute *ProductResponse `json:"substitute,omitempty"`
	}

	RecipeResponse struct {
		ID          string                     `json:"id"`
		Name        string                     `json:"name"`
		Description string                     `json:"description"`
		ImageURL    string                     `json:"image_url,omitempty"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
		Missing     int                        `json:"missing"`
	}

	FillOrderResponse struct {
		AllResolved bool            `json:"all_resolved"`
		Added       []string        `json:"added"`
		Unresolved  []string        `json:"unresolved"`
		Orders      []OrderResponse `json:"orders"`
	}
)
