package inventory

import (
	"Smart-Fridge-Backend/entities"
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryIngredientRepository is the in-memory mirror used when the
// database is unreachable or its schema has not been set up. It
// returns gorm.ErrRecordNotFound for missing rows so services handle
// both implementations identically.
type memoryIngredientRepository struct {
	mu          sync.RWMutex
	ingredients []*entities.Ingredient
}

func NewMemoryIngredientRepository() IngredientRepository {
	return &memoryIngredientRepository{}
}

func (r *memoryIngredientRepository) GetIngredients(_ context.Context, userID string) ([]*entities.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Ingredient
	for _, ingredient := range r.ingredients {
		if ingredient.UserID.String() == userID {
			result = append(result, ingredient)
		}
	}
	return result, nil
}

func (r *memoryIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ingredient := range r.ingredients {
		if ingredient.ID.String() == id {
			return ingredient, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryIngredientRepository) GetIngredientByProduct(_ context.Context, userID string, productID uuid.UUID) (*entities.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ingredient := range r.ingredients {
		if ingredient.UserID.String() == userID &&
			ingredient.ProductID != nil && *ingredient.ProductID == productID {
			return ingredient, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryIngredientRepository) AddIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	r.ingredients = append(r.ingredients, ingredient)
	return nil
}

func (r *memoryIngredientRepository) UpdateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.ingredients {
		if existing.ID == ingredient.ID {
			r.ingredients[i] = ingredient
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryIngredientRepository) DeleteIngredient(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ingredient := range r.ingredients {
		if ingredient.ID.String() == id {
			r.ingredients = append(r.ingredients[:i], r.ingredients[i+1:]...)
			return nil
		}
	}
	return nil
}
