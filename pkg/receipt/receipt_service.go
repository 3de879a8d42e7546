package receipt

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/utils/storage"
	"Smart-Fridge-Backend/pkg/inventory"
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReceiptService interface {
		UploadReceipt(ctx context.Context, userID string, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error)
		ConfirmReceipt(ctx context.Context, userID string, req domain.ConfirmReceiptRequest) ([]domain.IngredientResponse, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		inventoryService  inventory.InventoryService
		awsS3             storage.AwsS3
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, inventoryService inventory.InventoryService, awsS3 storage.AwsS3) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		inventoryService:  inventoryService,
		awsS3:             awsS3,
	}
}

// UploadReceipt runs the mock OCR pipeline over an uploaded receipt
// image. The extracted items are derived deterministically from the
// filename and stored alongside the scan so confirmation can replay
// them. Archiving the image to S3 is best effort; extraction does not
// depend on it.
func (s *receiptService) UploadReceipt(ctx context.Context, userID string, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	scan := &entities.ReceiptScan{
		UserID:   uid,
		FileName: req.ReceiptImage.Filename,
		Status:   "Pending",
	}

	if s.awsS3 != nil {
		objectKey, err := s.awsS3.UploadFile(uuid.NewString(), req.ReceiptImage, "receipts", storage.AllowImage...)
		if err != nil {
			if errors.Is(err, storage.ErrFileTypeNotAllowed) {
				return domain.UploadReceiptResponse{}, err
			}
			log.Println("failed to archive receipt image:", err)
		} else {
			scan.ImageURL = s.awsS3.GetPublicLinkKey(objectKey)
		}
	}

	items := GenerateItems(req.ReceiptImage.Filename)
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	scan.ItemsJSON = string(itemsJSON)
	scan.Status = "Processed"

	if err := s.receiptRepository.CreateScan(ctx, scan); err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	return domain.UploadReceiptResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
		Items:    items,
	}, nil
}

// ConfirmReceipt stocks the reviewed items into the inventory and
// marks the scan confirmed. The client may have edited the extracted
// items, so the request payload wins over what the scan recorded.
func (s *receiptService) ConfirmReceipt(ctx context.Context, userID string, req domain.ConfirmReceiptRequest) ([]domain.IngredientResponse, error) {
	scan, err := s.receiptRepository.GetScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiptScanNotFound
		}
		return nil, err
	}
	if scan.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	batch := domain.AddIngredientsRequest{
		Items: make([]domain.AddIngredientRequest, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		batch.Items = append(batch.Items, domain.AddIngredientRequest{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			ExpiryDate: item.ExpiryDate,
		})
	}

	ingredients, err := s.inventoryService.AddIngredients(ctx, userID, batch)
	if err != nil {
		return nil, err
	}

	scan.Status = "Confirmed"
	if err := s.receiptRepository.UpdateScan(ctx, scan); err != nil {
		return nil, err
	}
	return ingredients, nil
}
