package receipt

import (
	"Smart-Fridge-Backend/entities"
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memoryReceiptRepository struct {
	mu    sync.RWMutex
	scans []*entities.ReceiptScan
}

func NewMemoryReceiptRepository() ReceiptRepository {
	return &memoryReceiptRepository{}
}

func (r *memoryReceiptRepository) CreateScan(_ context.Context, scan *entities.ReceiptScan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if scan.ID == uuid.Nil {
		scan.ID = uuid.New()
	}
	r.scans = append(r.scans, scan)
	return nil
}

func (r *memoryReceiptRepository) GetScanByID(_ context.Context, id string) (*entities.ReceiptScan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, scan := range r.scans {
		if scan.ID.String() == id {
			return scan, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryReceiptRepository) UpdateScan(_ context.Context, scan *entities.ReceiptScan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.scans {
		if existing.ID == scan.ID {
			r.scans[i] = scan
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
