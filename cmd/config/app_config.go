package config

import (
	"Smart-Fridge-Backend/internal/api/handlers"
	"Smart-Fridge-Backend/internal/api/routes"
	"Smart-Fridge-Backend/internal/middleware"
	"Smart-Fridge-Backend/internal/utils"
	"Smart-Fridge-Backend/internal/utils/cache"
	"Smart-Fridge-Backend/internal/utils/storage"
	"Smart-Fridge-Backend/pkg/catalog"
	"Smart-Fridge-Backend/pkg/inventory"
	"Smart-Fridge-Backend/pkg/jwt"
	"Smart-Fridge-Backend/pkg/order"
	"Smart-Fridge-Backend/pkg/payment"
	"Smart-Fridge-Backend/pkg/receipt"
	"Smart-Fridge-Backend/pkg/recipe"
	"Smart-Fridge-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires the application. When db is nil the app runs against
// in-memory repositories seeded with the reference catalog, so the API
// stays usable without Postgres.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Bangkok",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	redisClient := cache.NewRedisClient()

	// Repository
	var (
		userRepository       user.UserRepository
		catalogRepository    catalog.CatalogRepository
		ingredientRepository inventory.IngredientRepository
		orderRepository      order.OrderRepository
		recipeRepository     recipe.RecipeRepository
		receiptRepository    receipt.ReceiptRepository
	)
	if db != nil {
		userRepository = user.NewUserRepository(db)
		catalogRepository = catalog.NewCatalogRepository(db)
		ingredientRepository = inventory.NewIngredientRepository(db)
		orderRepository = order.NewOrderRepository(db)
		recipeRepository = recipe.NewRecipeRepository(db)
		receiptRepository = receipt.NewReceiptRepository(db)
	} else {
		log.Warn("database unavailable, using in-memory repositories")
		userRepository = user.NewMemoryUserRepository()
		catalogRepository = catalog.NewMemoryCatalogRepository()
		ingredientRepository = inventory.NewMemoryIngredientRepository()
		orderRepository = order.NewMemoryOrderRepository(ingredientRepository)
		recipeRepository = recipe.NewMemoryRecipeRepository()
		receiptRepository = receipt.NewMemoryReceiptRepository()
	}

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	catalogService := catalog.NewCatalogService(catalogRepository, redisClient)
	inventoryService := inventory.NewInventoryService(ingredientRepository, userRepository)
	orderService := order.NewOrderService(orderRepository, catalogRepository)
	paymentService := payment.NewPaymentService(orderRepository, userRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, catalogRepository, ingredientRepository, orderService)
	receiptService := receipt.NewReceiptService(receiptRepository, inventoryService, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		CatalogHandler:   catalogHandler,
		OrderHandler:     orderHandler,
		InventoryHandler: inventoryHandler,
		RecipeHandler:    recipeHandler,
		ReceiptHandler:   receiptHandler,
		PaymentHandler:   paymentHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
