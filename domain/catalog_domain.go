package domain

import "errors"

var (
	MessageSuccessGetStores     = "stores retrieved successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessLookupBarcode = "barcode resolved successfully"

	MessageFailedGetStores     = "failed to retrieve stores"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedLookupBarcode = "failed to resolve barcode"

	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")
	ErrBarcodeUnknown  = errors.New("barcode not recognized")
)

type (
	StoreResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		LogoURL  string `json:"logo_url,omitempty"`
		Location string `json:"location"`
	}

	ProductResponse struct {
		ID       string  `json:"id"`
		StoreID  string  `json:"store_id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
		Unit     string  `json:"unit"`
	}

	BarcodeLookupRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	BarcodeLookupResponse struct {
		Product           ProductResponse `json:"product"`
		DefaultExpiryDays int             `json:"default_expiry_days"`
	}
)
