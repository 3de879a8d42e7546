package order

import (
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/inventory"
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryOrderRepository mirrors the database-backed repository when no
// database is available. It shares the in-memory ingredient repository
// so RunInTransaction reconciles against the same inventory the rest
// of the application sees.
type memoryOrderRepository struct {
	mu          sync.RWMutex
	orders      []*entities.Order
	ingredients inventory.IngredientRepository
}

func NewMemoryOrderRepository(ingredients inventory.IngredientRepository) OrderRepository {
	return &memoryOrderRepository{ingredients: ingredients}
}

func (r *memoryOrderRepository) GetOrders(_ context.Context, userID string) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Order
	for _, order := range r.orders {
		if order.UserID.String() == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (r *memoryOrderRepository) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID.String() == id {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryOrderRepository) GetOrderByProduct(_ context.Context, userID string, productID uuid.UUID) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.UserID.String() == userID && order.ProductID == productID {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryOrderRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *memoryOrderRepository) UpdateOrder(_ context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.orders {
		if existing.ID == order.ID {
			r.orders[i] = order
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryOrderRepository) DeleteOrder(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, order := range r.orders {
		if order.ID.String() == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryOrderRepository) DeleteAllOrders(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.orders[:0]
	for _, order := range r.orders {
		if order.UserID.String() != userID {
			kept = append(kept, order)
		}
	}
	r.orders = kept
	return nil
}

// RunInTransaction has no rollback in memory mode; callers rely on the
// plan-then-apply shape of the confirm flow instead.
func (r *memoryOrderRepository) RunInTransaction(_ context.Context, fn func(orders OrderRepository, ingredients inventory.IngredientRepository) error) error {
	return fn(r, r.ingredients)
}
