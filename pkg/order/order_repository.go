package order

import (
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/inventory"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		GetOrders(ctx context.Context, userID string) ([]*entities.Order, error)
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrderByProduct(ctx context.Context, userID string, productID uuid.UUID) (*entities.Order, error)
		CreateOrder(ctx context.Context, order *entities.Order) error
		UpdateOrder(ctx context.Context, order *entities.Order) error
		DeleteOrder(ctx context.Context, id string) error
		DeleteAllOrders(ctx context.Context, userID string) error
		// RunInTransaction executes fn against order and ingredient
		// repositories that share one transaction, so confirming a
		// purchase either fully reconciles the inventory or leaves it
		// untouched.
		RunInTransaction(ctx context.Context, fn func(orders OrderRepository, ingredients inventory.IngredientRepository) error) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetOrders(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrderByProduct(ctx context.Context, userID string, productID uuid.UUID) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Order{}).Error
}

func (r *orderRepository) DeleteAllOrders(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.Order{}).Error
}

func (r *orderRepository) RunInTransaction(ctx context.Context, fn func(orders OrderRepository, ingredients inventory.IngredientRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewOrderRepository(tx), inventory.NewIngredientRepository(tx))
	})
}
