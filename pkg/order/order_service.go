package order

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/catalog"
	"Smart-Fridge-Backend/pkg/inventory"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		GetOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		AddToOrder(ctx context.Context, userID string, req domain.AddOrderRequest) (domain.OrderResponse, error)
		UpdateQuantity(ctx context.Context, userID, orderID string, req domain.UpdateOrderRequest) (domain.OrderResponse, error)
		RemoveFromOrder(ctx context.Context, userID, orderID string) error
		ConfirmOrder(ctx context.Context, userID string) (domain.ConfirmOrderResponse, error)
	}

	orderService struct {
		orderRepository   OrderRepository
		catalogRepository catalog.CatalogRepository
	}
)

func NewOrderService(orderRepository OrderRepository, catalogRepository catalog.CatalogRepository) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		catalogRepository: catalogRepository,
	}
}

func (s *orderService) GetOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	return response, nil
}

// AddToOrder keeps at most one order line per product. Adding a product
// already on the list increments its quantity instead of creating a
// second line.
func (s *orderService) AddToOrder(ctx context.Context, userID string, req domain.AddOrderRequest) (domain.OrderResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	product, err := s.catalogRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrProductNotFound
		}
		return domain.OrderResponse{}, err
	}

	existing, err := s.orderRepository.GetOrderByProduct(ctx, userID, productID)
	if err == nil {
		existing.Quantity += req.Quantity
		if err := s.orderRepository.UpdateOrder(ctx, existing); err != nil {
			return domain.OrderResponse{}, err
		}
		return toOrderResponse(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OrderResponse{}, err
	}

	order := &entities.Order{
		UserID:    uid,
		ProductID: product.ID,
		StoreID:   product.StoreID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  req.Quantity,
		Unit:      product.Unit,
	}
	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

// UpdateQuantity sets the quantity of an order line. A quantity of zero
// or less removes the line; the returned response then carries quantity
// zero.
func (s *orderService) UpdateQuantity(ctx context.Context, userID, orderID string, req domain.UpdateOrderRequest) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	if order.UserID.String() != userID {
		return domain.OrderResponse{}, domain.ErrUnauthorizedAccess
	}

	if req.Quantity <= 0 {
		if err := s.orderRepository.DeleteOrder(ctx, orderID); err != nil {
			return domain.OrderResponse{}, err
		}
		order.Quantity = 0
		return toOrderResponse(order), nil
	}

	order.Quantity = req.Quantity
	if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) RemoveFromOrder(ctx context.Context, userID, orderID string) error {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	if order.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}
	return s.orderRepository.DeleteOrder(ctx, orderID)
}

// ConfirmOrder reconciles the shopping list into the inventory. Each
// order line either tops up the ingredient already tracked for the same
// product, leaving its expiry date untouched, or stocks a new
// ingredient whose expiry is derived from the product category. All
// order lines are cleared afterwards.
func (s *orderService) ConfirmOrder(ctx context.Context, userID string) (domain.ConfirmOrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx, userID)
	if err != nil {
		return domain.ConfirmOrderResponse{}, err
	}
	if len(orders) == 0 {
		return domain.ConfirmOrderResponse{}, domain.ErrOrderEmpty
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ConfirmOrderResponse{}, domain.ErrParseUUID
	}

	// Categories are read outside the transaction; a product that has
	// vanished from the catalog falls back to the default shelf life.
	categories := make(map[uuid.UUID]string, len(orders))
	for _, order := range orders {
		if product, err := s.catalogRepository.GetProductByID(ctx, order.ProductID.String()); err == nil {
			categories[order.ProductID] = product.Category
		}
	}

	now := time.Now()
	response := domain.ConfirmOrderResponse{
		NewIngredients:     []domain.IngredientResponse{},
		UpdatedIngredients: []domain.IngredientResponse{},
	}

	err = s.orderRepository.RunInTransaction(ctx, func(orderRepo OrderRepository, ingredientRepo inventory.IngredientRepository) error {
		for _, order := range orders {
			existing, err := ingredientRepo.GetIngredientByProduct(ctx, userID, order.ProductID)
			if err == nil {
				existing.Quantity += float64(order.Quantity)
				if err := ingredientRepo.UpdateIngredient(ctx, existing); err != nil {
					return err
				}
				response.UpdatedIngredients = append(response.UpdatedIngredients, inventory.ToIngredientResponse(existing, now))
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			expiry := now.AddDate(0, 0, inventory.ShelfLifeDays(categories[order.ProductID]))
			productID := order.ProductID
			ingredient := &entities.Ingredient{
				UserID:     uid,
				ProductID:  &productID,
				Name:       order.Name,
				Quantity:   float64(order.Quantity),
				Unit:       order.Unit,
				ExpiryDate: &expiry,
				AddedDate:  now,
			}
			if err := ingredientRepo.AddIngredient(ctx, ingredient); err != nil {
				return err
			}
			response.NewIngredients = append(response.NewIngredients, inventory.ToIngredientResponse(ingredient, now))
		}

		return orderRepo.DeleteAllOrders(ctx, userID)
	})
	if err != nil {
		return domain.ConfirmOrderResponse{}, err
	}

	response.ClearedOrders = len(orders)
	return response, nil
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	return domain.OrderResponse{
		ID:        order.ID.String(),
		ProductID: order.ProductID.String(),
		StoreID:   order.StoreID.String(),
		Name:      order.Name,
		Price:     order.Price,
		Quantity:  order.Quantity,
		Unit:      order.Unit,
	}
}
