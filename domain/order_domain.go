package domain

import "errors"

var (
	MessageSuccessGetOrders     = "orders retrieved successfully"
	MessageSuccessAddOrder      = "product added to order"
	MessageSuccessUpdateOrder   = "order updated successfully"
	MessageSuccessDeleteOrder   = "order removed successfully"
	MessageSuccessConfirmOrder  = "purchase confirmed, inventory updated"
	MessageSuccessCheckoutOrder = "checkout transaction created"

	MessageFailedGetOrders     = "failed to retrieve orders"
	MessageFailedAddOrder      = "failed to add product to order"
	MessageFailedUpdateOrder   = "failed to update order"
	MessageFailedDeleteOrder   = "failed to remove order"
	MessageFailedConfirmOrder  = "failed to confirm purchase"
	MessageFailedCheckoutOrder = "failed to create checkout transaction"

	ErrOrderNotFound = errors.New("order not found")
	ErrOrderEmpty    = errors.New("order list is empty")
)

type (
	AddOrderRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	// Quantity carries no validation tag: zero and negative values are
	// legitimate and remove the order.
	UpdateOrderRequest struct {
		Quantity int `json:"quantity"`
	}

	OrderResponse struct {
		ID        string  `json:"id"`
		ProductID string  `json:"product_id"`
		StoreID   string  `json:"store_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
		Unit      string  `json:"unit"`
	}

	ConfirmOrderResponse struct {
		NewIngredients     []IngredientResponse `json:"new_ingredients"`
		UpdatedIngredients []IngredientResponse `json:"updated_ingredients"`
		ClearedOrders      int                  `json:"cleared_orders"`
	}

	CheckoutResponse struct {
		OrderID     string  `json:"order_id"`
		GrossAmount float64 `json:"gross_amount"`
		Token       string  `json:"token"`
		RedirectURL string  `json:"redirect_url"`
	}
)
