package catalog

import (
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/seeddata"
	"context"

	"gorm.io/gorm"
)

// memoryCatalogRepository serves the reference catalog when the
// database is unavailable. The catalog is immutable reference data, so
// no locking is needed; iteration order is the seed insertion order,
// which keeps matcher tie-breaking deterministic.
type memoryCatalogRepository struct {
	stores   []*entities.Store
	products []*entities.Product
}

func NewMemoryCatalogRepository() CatalogRepository {
	return &memoryCatalogRepository{
		stores:   seeddata.Stores(),
		products: seeddata.Products(),
	}
}

func (r *memoryCatalogRepository) GetStores(_ context.Context) ([]*entities.Store, error) {
	return r.stores, nil
}

func (r *memoryCatalogRepository) GetStoreByID(_ context.Context, id string) (*entities.Store, error) {
	for _, store := range r.stores {
		if store.ID.String() == id {
			return store, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryCatalogRepository) GetProducts(_ context.Context) ([]*entities.Product, error) {
	return r.products, nil
}

func (r *memoryCatalogRepository) GetProductsByStore(_ context.Context, storeID string) ([]*entities.Product, error) {
	var result []*entities.Product
	for _, product := range r.products {
		if product.StoreID.String() == storeID {
			result = append(result, product)
		}
	}
	return result, nil
}

func (r *memoryCatalogRepository) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	for _, product := range r.products {
		if product.ID.String() == id {
			return product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryCatalogRepository) GetProductByBarcode(_ context.Context, barcode string) (*entities.Product, error) {
	for _, product := range r.products {
		if product.Barcode != nil && *product.Barcode == barcode {
			return product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
