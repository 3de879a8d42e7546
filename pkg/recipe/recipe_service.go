package recipe

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/catalog"
	"Smart-Fridge-Backend/pkg/inventory"
	"Smart-Fridge-Backend/pkg/order"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecommendations(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, userID, recipeID string) (domain.RecipeResponse, error)
		FillMissingToOrder(ctx context.Context, userID, recipeID string) (domain.FillOrderResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		catalogRepository    catalog.CatalogRepository
		ingredientRepository inventory.IngredientRepository
		orderService         order.OrderService
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	catalogRepository catalog.CatalogRepository,
	ingredientRepository inventory.IngredientRepository,
	orderService order.OrderService,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		catalogRepository:    catalogRepository,
		ingredientRepository: ingredientRepository,
		orderService:         orderService,
	}
}

// GetRecommendations renders every recipe against the user's current
// inventory: each ingredient is marked available or, when missing,
// paired with a store product that could substitute for it.
func (s *recipeService) GetRecommendations(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	stocked, products, err := s.loadContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, s.toRecipeResponse(recipe, stocked, products))
	}
	return response, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, userID, recipeID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	stocked, products, err := s.loadContext(ctx, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toRecipeResponse(recipe, stocked, products), nil
}

// FillMissingToOrder puts one unit of a matching store product on the
// shopping list for every recipe ingredient the inventory lacks.
// Ingredients with no catalog match are reported back as unresolved
// rather than failing the whole request.
func (s *recipeService) FillMissingToOrder(ctx context.Context, userID, recipeID string) (domain.FillOrderResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FillOrderResponse{}, domain.ErrRecipeNotFound
		}
		return domain.FillOrderResponse{}, err
	}

	stocked, products, err := s.loadContext(ctx, userID)
	if err != nil {
		return domain.FillOrderResponse{}, err
	}

	response := domain.FillOrderResponse{
		Added:      []string{},
		Unresolved: []string{},
	}

	for _, ingredient := range recipe.Ingredients {
		if stocked[normalize(ingredient.Name)] {
			continue
		}

		product, ok := FindMatch(ingredient.Name, products)
		if !ok {
			response.Unresolved = append(response.Unresolved, ingredient.Name)
			continue
		}

		if _, err := s.orderService.AddToOrder(ctx, userID, domain.AddOrderRequest{
			ProductID: product.ID.String(),
			Quantity:  1,
		}); err != nil {
			return domain.FillOrderResponse{}, err
		}
		response.Added = append(response.Added, ingredient.Name)
	}

	response.AllResolved = len(response.Unresolved) == 0

	orders, err := s.orderService.GetOrders(ctx, userID)
	if err != nil {
		return domain.FillOrderResponse{}, err
	}
	response.Orders = orders
	return response, nil
}

// loadContext fetches the two lookups every recipe read needs: which
// ingredient names the user has in stock, and the catalog products a
// missing ingredient could be matched against.
func (s *recipeService) loadContext(ctx context.Context, userID string) (map[string]bool, []*entities.Product, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	stocked := make(map[string]bool, len(ingredients))
	for _, ingredient := range ingredients {
		stocked[normalize(ingredient.Name)] = true
	}

	products, err := s.catalogRepository.GetProducts(ctx)
	if err != nil {
		return nil, nil, err
	}
	return stocked, products, nil
}

func (s *recipeService) toRecipeResponse(recipe *entities.Recipe, stocked map[string]bool, products []*entities.Product) domain.RecipeResponse {
	response := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
		Ingredients: make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients)),
	}

	for _, ingredient := range recipe.Ingredients {
		item := domain.RecipeIngredientResponse{
			Name:      ingredient.Name,
			Quantity:  ingredient.Quantity,
			Unit:      ingredient.Unit,
			Available: stocked[normalize(ingredient.Name)],
		}
		if !item.Available {
			response.Missing++
			if product, ok := FindMatch(ingredient.Name, products); ok {
				item.Substitute = &domain.ProductResponse{
					ID:       product.ID.String(),
					StoreID:  product.StoreID.String(),
					Name:     product.Name,
					Category: product.Category,
					Price:    product.Price,
					Unit:     product.Unit,
				}
			}
		}
		response.Ingredients = append(response.Ingredients, item)
	}

	return response
}
