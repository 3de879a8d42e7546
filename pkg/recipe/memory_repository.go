package recipe

import (
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/seeddata"
	"context"

	"gorm.io/gorm"
)

// memoryRecipeRepository serves the built-in recipe book when the
// database is unavailable. Recipes are immutable reference data.
type memoryRecipeRepository struct {
	recipes []*entities.Recipe
}

func NewMemoryRecipeRepository() RecipeRepository {
	return &memoryRecipeRepository{recipes: seeddata.Recipes()}
}

func (r *memoryRecipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	return r.recipes, nil
}

func (r *memoryRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	for _, recipe := range r.recipes {
		if recipe.ID.String() == id {
			return recipe, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
