package order

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/seeddata"
	"Smart-Fridge-Backend/pkg/catalog"
	"Smart-Fridge-Backend/pkg/inventory"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	chickenBreastID = seeddata.ID("p3") // Meat
	milkID          = seeddata.ID("p2") // Dairy
)

func newTestService() (OrderService, inventory.IngredientRepository) {
	ingredients := inventory.NewMemoryIngredientRepository()
	orders := NewMemoryOrderRepository(ingredients)
	return NewOrderService(orders, catalog.NewMemoryCatalogRepository()), ingredients
}

func TestAddToOrderMergesSameProduct(t *testing.T) {
	service, _ := newTestService()
	userID := uuid.NewString()

	first, err := service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: milkID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: milkID.String(),
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	orders, err := service.GetOrders(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Milk", orders[0].Name)
}

func TestAddToOrderUnknownProduct(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AddToOrder(context.Background(), uuid.NewString(), domain.AddOrderRequest{
		ProductID: uuid.NewString(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	service, _ := newTestService()
	userID := uuid.NewString()

	added, err := service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: milkID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	updated, err := service.UpdateQuantity(context.Background(), userID, added.ID, domain.UpdateOrderRequest{Quantity: -1})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)

	orders, err := service.GetOrders(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// an explicit zero removes as well
	added, err = service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: chickenBreastID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	updated, err = service.UpdateQuantity(context.Background(), userID, added.ID, domain.UpdateOrderRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)

	orders, err = service.GetOrders(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateQuantityOwnership(t *testing.T) {
	service, _ := newTestService()
	userID := uuid.NewString()

	added, err := service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: milkID.String(),
		Quantity:  1,
	})
	require.NoError(t, err)

	_, err = service.UpdateQuantity(context.Background(), uuid.NewString(), added.ID, domain.UpdateOrderRequest{Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestConfirmOrderStocksNewIngredients(t *testing.T) {
	service, ingredients := newTestService()
	userID := uuid.NewString()

	_, err := service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: chickenBreastID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)
	_, err = service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: milkID.String(),
		Quantity:  1,
	})
	require.NoError(t, err)

	res, err := service.ConfirmOrder(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, res.NewIngredients, 2)
	assert.Empty(t, res.UpdatedIngredients)
	assert.Equal(t, 2, res.ClearedOrders)

	stocked, err := ingredients.GetIngredients(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stocked, 2)

	byName := map[string]*entities.Ingredient{}
	for _, ing := range stocked {
		byName[ing.Name] = ing
	}

	// meat gets 5 days of shelf life, dairy the 14-day default
	require.NotNil(t, byName["Chicken Breast"].ExpiryDate)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 5), *byName["Chicken Breast"].ExpiryDate, time.Minute)
	require.NotNil(t, byName["Milk"].ExpiryDate)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), *byName["Milk"].ExpiryDate, time.Minute)

	orders, err := service.GetOrders(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestConfirmOrderTopsUpWithoutTouchingExpiry(t *testing.T) {
	service, ingredients := newTestService()
	userID := uuid.NewString()
	uid := uuid.MustParse(userID)

	expiry := time.Now().AddDate(0, 0, 2)
	productID := milkID
	require.NoError(t, ingredients.AddIngredient(context.Background(), &entities.Ingredient{
		UserID:     uid,
		ProductID:  &productID,
		Name:       "Milk",
		Quantity:   1,
		Unit:       "liter",
		ExpiryDate: &expiry,
		AddedDate:  time.Now(),
	}))

	_, err := service.AddToOrder(context.Background(), userID, domain.AddOrderRequest{
		ProductID: milkID.String(),
		Quantity:  3,
	})
	require.NoError(t, err)

	res, err := service.ConfirmOrder(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, res.NewIngredients)
	require.Len(t, res.UpdatedIngredients, 1)

	stocked, err := ingredients.GetIngredients(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, stocked, 1)
	assert.Equal(t, float64(4), stocked[0].Quantity)
	require.NotNil(t, stocked[0].ExpiryDate)
	assert.True(t, stocked[0].ExpiryDate.Equal(expiry), "restocking must not refresh the expiry date")
}

func TestConfirmOrderEmptyList(t *testing.T) {
	service, _ := newTestService()

	_, err := service.ConfirmOrder(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrOrderEmpty)
}
