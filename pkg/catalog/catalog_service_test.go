package catalog

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/seeddata"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() CatalogService {
	return NewCatalogService(NewMemoryCatalogRepository(), nil)
}

func TestGetStoresAndProducts(t *testing.T) {
	service := newTestService()

	stores, err := service.GetStores(context.Background())
	require.NoError(t, err)
	assert.Len(t, stores, 10)

	products, err := service.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 60)
}

func TestGetProductsByStore(t *testing.T) {
	service := newTestService()

	products, err := service.GetProductsByStore(context.Background(), seeddata.ID("s1").String())
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, product := range products {
		assert.Equal(t, seeddata.ID("s1").String(), product.StoreID)
	}

	_, err = service.GetProductsByStore(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestLookupBarcode(t *testing.T) {
	service := newTestService()

	res, err := service.LookupBarcode(context.Background(), domain.BarcodeLookupRequest{
		Barcode: "5901234123457",
	})
	require.NoError(t, err)
	assert.Equal(t, "Eggs", res.Product.Name)
	// dairy gets a 10-day default expiry on scan
	assert.Equal(t, 10, res.DefaultExpiryDays)

	_, err = service.LookupBarcode(context.Background(), domain.BarcodeLookupRequest{
		Barcode: "0000000000000",
	})
	assert.ErrorIs(t, err, domain.ErrBarcodeUnknown)
}
