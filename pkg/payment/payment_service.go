package payment

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/utils"
	"Smart-Fridge-Backend/pkg/order"
	"Smart-Fridge-Backend/pkg/user"
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CheckoutOrder(ctx context.Context, userID string) (domain.CheckoutResponse, error)
		HandleNotification(ctx context.Context, notification map[string]interface{}) error
	}

	paymentService struct {
		orderRepository order.OrderRepository
		userRepository  user.UserRepository
		snapClient      snap.Client
		coreClient      coreapi.Client
	}
)

// NewPaymentService wires the Midtrans Snap client for shopping list
// checkout. Sandbox is the default; production is opt-in via config.
func NewPaymentService(orderRepository order.OrderRepository, userRepository user.UserRepository) PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	serverKey := utils.GetConfig("SERVER_KEY")

	var snapClient snap.Client
	snapClient.New(serverKey, env)

	var coreClient coreapi.Client
	coreClient.New(serverKey, env)

	return &paymentService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
		snapClient:      snapClient,
		coreClient:      coreClient,
	}
}

// CheckoutOrder creates a Snap transaction covering the whole shopping
// list. The returned token and redirect URL hand payment over to
// Midtrans; confirming the purchase into the inventory stays a
// separate step.
func (s *paymentService) CheckoutOrder(ctx context.Context, userID string) (domain.CheckoutResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx, userID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if len(orders) == 0 {
		return domain.CheckoutResponse{}, domain.ErrOrderEmpty
	}

	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrUserNotFound
		}
		return domain.CheckoutResponse{}, err
	}

	var grossAmount int64
	items := make([]midtrans.ItemDetails, 0, len(orders))
	for _, o := range orders {
		price := int64(o.Price)
		grossAmount += price * int64(o.Quantity)
		items = append(items, midtrans.ItemDetails{
			ID:    o.ProductID.String(),
			Name:  o.Name,
			Price: price,
			Qty:   int32(o.Quantity),
		})
	}

	orderID := uuid.NewString()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: account.Name,
			Email: account.Email,
		},
		Items: &items,
	}

	snapResp, midErr := s.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		return domain.CheckoutResponse{}, midErr
	}

	return domain.CheckoutResponse{
		OrderID:     orderID,
		GrossAmount: float64(grossAmount),
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes a Midtrans payment notification. The
// status is re-checked against the Midtrans API rather than trusted
// from the webhook payload. Payment settlement only unlocks the
// client-side confirm step, so nothing is persisted here.
func (s *paymentService) HandleNotification(_ context.Context, notification map[string]interface{}) error {
	orderID, ok := notification["order_id"].(string)
	if !ok || orderID == "" {
		return errors.New("notification missing order_id")
	}

	status, midErr := s.coreClient.CheckTransaction(orderID)
	if midErr != nil {
		return midErr
	}

	switch status.TransactionStatus {
	case "capture", "settlement":
		log.Printf("payment settled for order %s", orderID)
	case "deny", "cancel", "expire":
		log.Printf("payment %s for order %s", status.TransactionStatus, orderID)
	default:
		log.Printf("payment pending for order %s", orderID)
	}
	return nil
}
