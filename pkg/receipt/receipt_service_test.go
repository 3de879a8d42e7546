package receipt

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/pkg/inventory"
	"Smart-Fridge-Backend/pkg/user"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (ReceiptService, inventory.InventoryService) {
	inventoryService := inventory.NewInventoryService(
		inventory.NewMemoryIngredientRepository(),
		user.NewMemoryUserRepository(),
	)
	return NewReceiptService(NewMemoryReceiptRepository(), inventoryService, nil), inventoryService
}

func uploadRequest(filename string) domain.UploadReceiptRequest {
	return domain.UploadReceiptRequest{
		ReceiptImage: &multipart.FileHeader{Filename: filename},
	}
}

func TestUploadReceiptExtractsItems(t *testing.T) {
	service, _ := newTestService()
	userID := uuid.NewString()

	res, err := service.UploadReceipt(context.Background(), userID, uploadRequest("makro-receipt.jpg"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.ScanID)
	assert.Equal(t, "Processed", res.Status)
	require.NotEmpty(t, res.Items)

	// same file, same extraction
	again, err := service.UploadReceipt(context.Background(), userID, uploadRequest("makro-receipt.jpg"))
	require.NoError(t, err)
	assert.Equal(t, res.Items, again.Items)
}

func TestConfirmReceiptStocksInventory(t *testing.T) {
	service, inventoryService := newTestService()
	userID := uuid.NewString()

	uploaded, err := service.UploadReceipt(context.Background(), userID, uploadRequest("scan.jpg"))
	require.NoError(t, err)

	// the client reviewed the items and adjusted one quantity
	items := make([]domain.ConfirmReceiptItemRequest, 0, len(uploaded.Items))
	for _, item := range uploaded.Items {
		items = append(items, domain.ConfirmReceiptItemRequest{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}
	items[0].Quantity = 99

	stocked, err := service.ConfirmReceipt(context.Background(), userID, domain.ConfirmReceiptRequest{
		ScanID: uploaded.ScanID,
		Items:  items,
	})
	require.NoError(t, err)
	require.Len(t, stocked, len(items))
	assert.Equal(t, float64(99), stocked[0].Quantity)

	ingredients, err := inventoryService.GetIngredients(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, ingredients, len(items))
}

func TestConfirmReceiptOwnershipAndMissingScan(t *testing.T) {
	service, _ := newTestService()
	userID := uuid.NewString()

	uploaded, err := service.UploadReceipt(context.Background(), userID, uploadRequest("scan.jpg"))
	require.NoError(t, err)

	items := []domain.ConfirmReceiptItemRequest{{Name: "Milk", Quantity: 1, Unit: "bottle"}}

	_, err = service.ConfirmReceipt(context.Background(), uuid.NewString(), domain.ConfirmReceiptRequest{
		ScanID: uploaded.ScanID,
		Items:  items,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	_, err = service.ConfirmReceipt(context.Background(), userID, domain.ConfirmReceiptRequest{
		ScanID: uuid.NewString(),
		Items:  items,
	})
	assert.ErrorIs(t, err, domain.ErrReceiptScanNotFound)
}
