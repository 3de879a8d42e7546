package domain

import (
	"errors"
	"time"
)

// ExpiryStatus is derived from an ingredient's expiry date and the
// current date on every read; it is never stored.
type ExpiryStatus string

const (
	ExpiryStatusFresh        ExpiryStatus = "fresh"
	ExpiryStatusExpiringSoon ExpiryStatus = "expiring_soon"
	ExpiryStatusExpired      ExpiryStatus = "expired"
)

var (
	MessageSuccessAddIngredient      = "ingredient added successfully"
	MessageSuccessAddIngredients     = "ingredients added successfully"
	MessageSuccessGetIngredients     = "ingredients retrieved successfully"
	MessageSuccessUpdateExpiryDate   = "expiry date updated successfully"
	MessageSuccessDeleteIngredient   = "ingredient removed successfully"
	MessageSuccessGetExpiring        = "expiring ingredients retrieved successfully"
	MessageSuccessSendExpiryReminder = "expiry reminder sent successfully"

	MessageFailedAddIngredient      = "failed to add ingredient"
	MessageFailedGetIngredients     = "failed to retrieve ingredients"
	MessageFailedUpdateExpiryDate   = "failed to update expiry date"
	MessageFailedDeleteIngredient   = "failed to remove ingredient"
	MessageFailedSendExpiryReminder = "failed to send expiry reminder"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
)

type (
	AddIngredientRequest struct {
		ProductID  string  `json:"product_id" validate:"omitempty,uuid"`
		Name       string  `json:"name" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit       string  `json:"unit" validate:"omitempty"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
		AddedDate  string  `json:"added_date" validate:"omitempty"`
	}

	AddIngredientsRequest struct {
		Items []AddIngredientRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateExpiryDateRequest struct {
		ExpiryDate string `json:"expiry_date" validate:"required"`
	}

	IngredientResponse struct {
		ID         string       `json:"id"`
		ProductID  string       `json:"product_id,omitempty"`
		Name       string       `json:"name"`
		Quantity   float64      `json:"quantity"`
		Unit       string       `json:"unit"`
		ExpiryDate *time.Time   `json:"expiry_date,omitempty"`
		AddedDate  time.Time    `json:"added_date"`
		Status     ExpiryStatus `json:"status"`
	}

	ExpiringSummaryResponse struct {
		Fresh        int                  `json:"fresh"`
		ExpiringSoon int                  `json:"expiring_soon"`
		Expired      int                  `json:"expired"`
		Items        []IngredientResponse `json:"items"`
	}
)
