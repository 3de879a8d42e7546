package inventory

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/pkg/user"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() InventoryService {
	return NewInventoryService(NewMemoryIngredientRepository(), user.NewMemoryUserRepository())
}

func TestAddIngredientFillsDefaults(t *testing.T) {
	service := newTestService()
	userID := uuid.NewString()

	res, err := service.AddIngredient(context.Background(), userID, domain.AddIngredientRequest{
		Name: "Basil",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1), res.Quantity)
	assert.Equal(t, "piece", res.Unit)
	assert.Nil(t, res.ExpiryDate)
	assert.Equal(t, domain.ExpiryStatusFresh, res.Status)
	assert.WithinDuration(t, time.Now(), res.AddedDate, time.Minute)
}

func TestAddIngredientParsesDates(t *testing.T) {
	service := newTestService()
	userID := uuid.NewString()

	res, err := service.AddIngredient(context.Background(), userID, domain.AddIngredientRequest{
		Name:       "Milk",
		Quantity:   2,
		Unit:       "liter",
		ExpiryDate: "2030-01-15",
	})
	require.NoError(t, err)
	require.NotNil(t, res.ExpiryDate)
	assert.Equal(t, 2030, res.ExpiryDate.Year())

	_, err = service.AddIngredient(context.Background(), userID, domain.AddIngredientRequest{
		Name:       "Milk",
		ExpiryDate: "15/01/2030",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestUpdateExpiryDateOwnership(t *testing.T) {
	service := newTestService()
	userID := uuid.NewString()

	added, err := service.AddIngredient(context.Background(), userID, domain.AddIngredientRequest{Name: "Eggs"})
	require.NoError(t, err)

	updated, err := service.UpdateExpiryDate(context.Background(), userID, added.ID, domain.UpdateExpiryDateRequest{
		ExpiryDate: "2030-06-01",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ExpiryDate)

	_, err = service.UpdateExpiryDate(context.Background(), uuid.NewString(), added.ID, domain.UpdateExpiryDateRequest{
		ExpiryDate: "2030-06-01",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	_, err = service.UpdateExpiryDate(context.Background(), userID, uuid.NewString(), domain.UpdateExpiryDateRequest{
		ExpiryDate: "2030-06-01",
	})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestGetExpiringSummary(t *testing.T) {
	service := newTestService()
	userID := uuid.NewString()

	today := time.Now()
	add := func(name, expiry string) {
		req := domain.AddIngredientRequest{Name: name, ExpiryDate: expiry}
		_, err := service.AddIngredient(context.Background(), userID, req)
		require.NoError(t, err)
	}

	add("Yogurt", today.AddDate(0, 0, -2).Format("2006-01-02")) // expired
	add("Spinach", today.AddDate(0, 0, 2).Format("2006-01-02")) // expiring soon
	add("Rice", today.AddDate(0, 1, 0).Format("2006-01-02"))    // fresh
	add("Salt", "")                                             // no expiry, fresh

	summary, err := service.GetExpiringSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.ExpiringSoon)
	assert.Equal(t, 2, summary.Fresh)

	// expired items come first in the attention list
	require.Len(t, summary.Items, 2)
	assert.Equal(t, "Yogurt", summary.Items[0].Name)
	assert.Equal(t, "Spinach", summary.Items[1].Name)
}

func TestDeleteIngredient(t *testing.T) {
	service := newTestService()
	userID := uuid.NewString()

	added, err := service.AddIngredient(context.Background(), userID, domain.AddIngredientRequest{Name: "Tofu"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteIngredient(context.Background(), userID, added.ID))

	items, err := service.GetIngredients(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = service.DeleteIngredient(context.Background(), userID, added.ID)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
