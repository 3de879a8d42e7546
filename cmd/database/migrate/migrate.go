package migration

import (
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/seeddata"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Store{},
		&entities.Product{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Order{},
		&entities.Ingredient{},
		&entities.ReceiptScan{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Printf("error migrating %T: %v", model, err)
			return err
		}
	}

	if err := seed(db); err != nil {
		return err
	}

	log.Println("database migration complete")
	return nil
}

// seed loads the reference catalog and recipe book into an empty
// database. Seed IDs are stable, so re-running after a partial seed is
// harmless.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, store := range seeddata.Stores() {
		if err := db.Create(store).Error; err != nil {
			return err
		}
	}
	for _, product := range seeddata.Products() {
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}
	for _, recipe := range seeddata.Recipes() {
		if err := db.Create(recipe).Error; err != nil {
			return err
		}
	}

	log.Println("seeded reference catalog and recipes")
	return nil
}
