package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadReceipt  = "receipt processed successfully"
	MessageSuccessConfirmReceipt = "receipt items saved to inventory"

	MessageFailedUploadReceipt  = "failed to process receipt"
	MessageFailedConfirmReceipt = "failed to save receipt items"

	ErrReceiptScanNotFound = errors.New("receipt scan not found")
)

type (
	// ExtractedItem is a transient name/quantity/unit triple produced by
	// the receipt pipeline, not yet persisted as an ingredient.
	ExtractedItem struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string          `json:"scan_id"`
		ImageURL string          `json:"image_url,omitempty"`
		Status   string          `json:"status"`
		Items    []ExtractedItem `json:"items"`
	}

	ConfirmReceiptItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
	}

	ConfirmReceiptRequest struct {
		ScanID string                      `json:"scan_id" validate:"required,uuid"`
		Items  []ConfirmReceiptItemRequest `json:"items" validate:"required,min=1,dive"`
	}
)
