package inventory

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/utils/mailing"
	"Smart-Fridge-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type (
	InventoryService interface {
		GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error)
		AddIngredient(ctx context.Context, userID string, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		AddIngredients(ctx context.Context, userID string, req domain.AddIngredientsRequest) ([]domain.IngredientResponse, error)
		UpdateExpiryDate(ctx context.Context, userID, ingredientID string, req domain.UpdateExpiryDateRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, userID, ingredientID string) error
		GetExpiringSummary(ctx context.Context, userID string) (domain.ExpiringSummaryResponse, error)
		SendExpiryReminder(ctx context.Context, userID string) error
	}

	inventoryService struct {
		ingredientRepository IngredientRepository
		userRepository       user.UserRepository
	}
)

func NewInventoryService(ingredientRepository IngredientRepository, userRepository user.UserRepository) InventoryService {
	return &inventoryService{
		ingredientRepository: ingredientRepository,
		userRepository:       userRepository,
	}
}

func (s *inventoryService) GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, ToIngredientResponse(ingredient, now))
	}
	return response, nil
}

// AddIngredient fills the gaps a manual entry leaves open: quantity
// defaults to 1, unit to "piece", the added date to today. A missing
// expiry date stays nil and the item reads as fresh.
func (s *inventoryService) AddIngredient(ctx context.Context, userID string, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	ingredient, err := buildIngredient(uid, req, time.Now())
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(ingredient, time.Now()), nil
}

// AddIngredients stocks several items at once, as when a confirmed
// receipt scan lands in the inventory. Items are validated up front so
// a bad line rejects the whole batch.
func (s *inventoryService) AddIngredients(ctx context.Context, userID string, req domain.AddIngredientsRequest) ([]domain.IngredientResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	ingredients := make([]*entities.Ingredient, 0, len(req.Items))
	for _, item := range req.Items {
		ingredient, err := buildIngredient(uid, item, now)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
			return nil, err
		}
		response = append(response, ToIngredientResponse(ingredient, now))
	}
	return response, nil
}

func (s *inventoryService) UpdateExpiryDate(ctx context.Context, userID, ingredientID string, req domain.UpdateExpiryDateRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	if ingredient.UserID.String() != userID {
		return domain.IngredientResponse{}, domain.ErrUnauthorizedAccess
	}

	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrInvalidExpiryDate
	}

	ingredient.ExpiryDate = &expiry
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(ingredient, time.Now()), nil
}

func (s *inventoryService) DeleteIngredient(ctx context.Context, userID, ingredientID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	if ingredient.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}
	return s.ingredientRepository.DeleteIngredient(ctx, ingredientID)
}

// GetExpiringSummary counts the inventory by expiry status and returns
// the items that need attention, expired first.
func (s *inventoryService) GetExpiringSummary(ctx context.Context, userID string) (domain.ExpiringSummaryResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, userID)
	if err != nil {
		return domain.ExpiringSummaryResponse{}, err
	}

	now := time.Now()
	summary := domain.ExpiringSummaryResponse{Items: []domain.IngredientResponse{}}
	var expired, expiring []domain.IngredientResponse
	for _, ingredient := range ingredients {
		item := ToIngredientResponse(ingredient, now)
		switch item.Status {
		case domain.ExpiryStatusExpired:
			summary.Expired++
			expired = append(expired, item)
		case domain.ExpiryStatusExpiringSoon:
			summary.ExpiringSoon++
			expiring = append(expiring, item)
		default:
			summary.Fresh++
		}
	}
	summary.Items = append(summary.Items, expired...)
	summary.Items = append(summary.Items, expiring...)
	return summary, nil
}

// SendExpiryReminder emails the user a digest of expired and expiring
// items. Nothing is sent when the whole inventory is fresh.
func (s *inventoryService) SendExpiryReminder(ctx context.Context, userID string) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	summary, err := s.GetExpiringSummary(ctx, userID)
	if err != nil {
		return err
	}
	if summary.Expired == 0 && summary.ExpiringSoon == 0 {
		return nil
	}

	var lines strings.Builder
	for _, item := range summary.Items {
		date := "no expiry date"
		if item.ExpiryDate != nil {
			date = item.ExpiryDate.Format(dateLayout)
		}
		lines.WriteString(fmt.Sprintf("<li>%s (%s) - %s</li>", item.Name, item.Status, date))
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Some items in your kitchen need attention:</p><ul>%s</ul><p>Open the app to plan a recipe around them before they go to waste.</p>",
		account.Name, lines.String(),
	)
	return mailing.SendMail(account.Email, "Items in your kitchen are expiring", body)
}

func buildIngredient(userID uuid.UUID, req domain.AddIngredientRequest, now time.Time) (*entities.Ingredient, error) {
	ingredient := &entities.Ingredient{
		UserID:    userID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		AddedDate: now,
	}

	if ingredient.Quantity <= 0 {
		ingredient.Quantity = 1
	}
	if ingredient.Unit == "" {
		ingredient.Unit = "piece"
	}

	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ingredient.ProductID = &productID
	}

	if req.ExpiryDate != "" {
		expiry, err := time.Parse(dateLayout, req.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidExpiryDate
		}
		ingredient.ExpiryDate = &expiry
	}

	if req.AddedDate != "" {
		added, err := time.Parse(dateLayout, req.AddedDate)
		if err != nil {
			return nil, domain.ErrInvalidExpiryDate
		}
		ingredient.AddedDate = added
	}

	return ingredient, nil
}

// ToIngredientResponse renders an ingredient with its expiry status
// evaluated at the given time.
func ToIngredientResponse(ingredient *entities.Ingredient, now time.Time) domain.IngredientResponse {
	response := domain.IngredientResponse{
		ID:         ingredient.ID.String(),
		Name:       ingredient.Name,
		Quantity:   ingredient.Quantity,
		Unit:       ingredient.Unit,
		ExpiryDate: ingredient.ExpiryDate,
		AddedDate:  ingredient.AddedDate,
		Status:     ClassifyExpiry(ingredient.ExpiryDate, now),
	}
	if ingredient.ProductID != nil {
		response.ProductID = ingredient.ProductID.String()
	}
	return response
}
