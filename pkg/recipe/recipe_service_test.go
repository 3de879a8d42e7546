package recipe

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/seeddata"
	"Smart-Fridge-Backend/pkg/catalog"
	"Smart-Fridge-Backend/pkg/inventory"
	"Smart-Fridge-Backend/pkg/order"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var padThaiID = seeddata.ID("r1")

func newTestService() (RecipeService, inventory.IngredientRepository, order.OrderService) {
	ingredients := inventory.NewMemoryIngredientRepository()
	catalogRepository := catalog.NewMemoryCatalogRepository()
	orderService := order.NewOrderService(order.NewMemoryOrderRepository(ingredients), catalogRepository)
	service := NewRecipeService(NewMemoryRecipeRepository(), catalogRepository, ingredients, orderService)
	return service, ingredients, orderService
}

func stock(t *testing.T, ingredients inventory.IngredientRepository, userID uuid.UUID, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, ingredients.AddIngredient(context.Background(), &entities.Ingredient{
			UserID:    userID,
			Name:      name,
			Quantity:  1,
			Unit:      "piece",
			AddedDate: time.Now(),
		}))
	}
}

func TestGetRecommendationsMarksAvailability(t *testing.T) {
	service, ingredients, _ := newTestService()
	userID := uuid.New()

	stock(t, ingredients, userID, "eggs", "Tofu")

	recipes, err := service.GetRecommendations(context.Background(), userID.String())
	require.NoError(t, err)
	require.NotEmpty(t, recipes)

	var padThai domain.RecipeResponse
	for _, r := range recipes {
		if r.Name == "Pad Thai" {
			padThai = r
		}
	}
	require.NotEmpty(t, padThai.ID)
	require.Len(t, padThai.Ingredients, 5)
	assert.Equal(t, 3, padThai.Missing)

	byName := map[string]domain.RecipeIngredientResponse{}
	for _, ing := range padThai.Ingredients {
		byName[ing.Name] = ing
	}

	// inventory names match case-insensitively
	assert.True(t, byName["Eggs"].Available)
	assert.True(t, byName["Tofu"].Available)
	assert.False(t, byName["Rice Noodles"].Available)

	// missing ingredients get a store substitute from the catalog
	require.NotNil(t, byName["Rice Noodles"].Substitute)
	assert.Equal(t, "Rice Noodles", byName["Rice Noodles"].Substitute.Name)
	assert.Nil(t, byName["Eggs"].Substitute)
}

func TestFillMissingToOrderAddsOneUnitEach(t *testing.T) {
	service, ingredients, orderService := newTestService()
	userID := uuid.New()

	stock(t, ingredients, userID, "Eggs", "Tofu")

	res, err := service.FillMissingToOrder(context.Background(), userID.String(), padThaiID.String())
	require.NoError(t, err)
	assert.True(t, res.AllResolved)
	assert.ElementsMatch(t, []string{"Rice Noodles", "Bean Sprouts", "Peanuts"}, res.Added)
	assert.Empty(t, res.Unresolved)
	assert.Len(t, res.Orders, 3)

	orders, err := orderService.GetOrders(context.Background(), userID.String())
	require.NoError(t, err)
	for _, o := range orders {
		assert.Equal(t, 1, o.Quantity)
	}
}

func TestFillMissingToOrderReportsIngredientNames(t *testing.T) {
	ingredients := inventory.NewMemoryIngredientRepository()
	catalogRepository := catalog.NewMemoryCatalogRepository()
	orderService := order.NewOrderService(order.NewMemoryOrderRepository(ingredients), catalogRepository)

	// "Coconut" has no exact catalog product and resolves to
	// "Coconut Milk" by substring
	recipeID := uuid.New()
	curry := &entities.Recipe{
		ID:   recipeID,
		Name: "Quick Curry",
		Ingredients: []*entities.RecipeIngredient{
			{ID: uuid.New(), RecipeID: recipeID, Name: "Coconut", Quantity: 1, Unit: "can", Position: 0},
		},
	}
	service := NewRecipeService(&memoryRecipeRepository{recipes: []*entities.Recipe{curry}}, catalogRepository, ingredients, orderService)

	res, err := service.FillMissingToOrder(context.Background(), uuid.NewString(), recipeID.String())
	require.NoError(t, err)

	// the order line carries the matched product, but the added report
	// names the recipe ingredient
	assert.Equal(t, []string{"Coconut"}, res.Added)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "Coconut Milk", res.Orders[0].Name)
	assert.True(t, res.AllResolved)
}

func TestFillMissingToOrderNoOpWhenFullyStocked(t *testing.T) {
	service, ingredients, _ := newTestService()
	userID := uuid.New()

	stock(t, ingredients, userID, "Rice Noodles", "Eggs", "Tofu", "Bean Sprouts", "Peanuts")

	res, err := service.FillMissingToOrder(context.Background(), userID.String(), padThaiID.String())
	require.NoError(t, err)
	assert.True(t, res.AllResolved)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Orders)
}

func TestFillMissingToOrderUnknownRecipe(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.FillMissingToOrder(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
