package main

import (
	"Smart-Fridge-Backend/cmd/config"
	migration "Smart-Fridge-Backend/cmd/database/migrate"
	"Smart-Fridge-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Printf("database connection failed: %v", err)
		db = nil
	} else if err := migration.Migrate(db); err != nil {
		log.Printf("database migration failed: %v", err)
		db = nil
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
