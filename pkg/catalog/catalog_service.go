package catalog

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/inventory"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	productCacheKey = "catalog:products"
	productCacheTTL = 5 * time.Minute
)

type (
	CatalogService interface {
		GetStores(ctx context.Context) ([]domain.StoreResponse, error)
		GetStoreByID(ctx context.Context, id string) (domain.StoreResponse, error)
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		GetProductsByStore(ctx context.Context, storeID string) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		LookupBarcode(ctx context.Context, req domain.BarcodeLookupRequest) (domain.BarcodeLookupResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		redis             *redis.Client
	}
)

// NewCatalogService builds the catalog read side. The redis client is
// optional; when nil every read goes straight to the repository.
func NewCatalogService(catalogRepository CatalogRepository, redisClient *redis.Client) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		redis:             redisClient,
	}
}

func (s *catalogService) GetStores(ctx context.Context) ([]domain.StoreResponse, error) {
	stores, err := s.catalogRepository.GetStores(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.StoreResponse, 0, len(stores))
	for _, store := range stores {
		response = append(response, toStoreResponse(store))
	}
	return response, nil
}

func (s *catalogService) GetStoreByID(ctx context.Context, id string) (domain.StoreResponse, error) {
	store, err := s.catalogRepository.GetStoreByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StoreResponse{}, domain.ErrStoreNotFound
		}
		return domain.StoreResponse{}, err
	}
	return toStoreResponse(store), nil
}

func (s *catalogService) GetProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	if cached, ok := s.productsFromCache(ctx); ok {
		return cached, nil
	}

	products, err := s.catalogRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	s.storeProductsInCache(ctx, response)
	return response, nil
}

func (s *catalogService) GetProductsByStore(ctx context.Context, storeID string) ([]domain.ProductResponse, error) {
	if _, err := s.catalogRepository.GetStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}

	products, err := s.catalogRepository.GetProductsByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}
	return response, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.catalogRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// LookupBarcode resolves a scanned barcode to a catalog product. An
// unknown barcode is a reportable outcome, not a server failure.
func (s *catalogService) LookupBarcode(ctx context.Context, req domain.BarcodeLookupRequest) (domain.BarcodeLookupResponse, error) {
	product, err := s.catalogRepository.GetProductByBarcode(ctx, req.Barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BarcodeLookupResponse{}, domain.ErrBarcodeUnknown
		}
		return domain.BarcodeLookupResponse{}, err
	}

	return domain.BarcodeLookupResponse{
		Product:           toProductResponse(product),
		DefaultExpiryDays: inventory.ScanShelfLifeDays(product.Category),
	}, nil
}

// Cache failures degrade silently to repository reads.
func (s *catalogService) productsFromCache(ctx context.Context) ([]domain.ProductResponse, bool) {
	if s.redis == nil {
		return nil, false
	}

	payload, err := s.redis.Get(ctx, productCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var products []domain.ProductResponse
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *catalogService) storeProductsInCache(ctx context.Context, products []domain.ProductResponse) {
	if s.redis == nil {
		return
	}

	payload, err := json.Marshal(products)
	if err != nil {
		return
	}
	s.redis.Set(ctx, productCacheKey, payload, productCacheTTL)
}

func toStoreResponse(store *entities.Store) domain.StoreResponse {
	return domain.StoreResponse{
		ID:       store.ID.String(),
		Name:     store.Name,
		LogoURL:  store.LogoURL,
		Location: store.Location,
	}
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:       product.ID.String(),
		StoreID:  product.StoreID.String(),
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Unit:     product.Unit,
	}
}
