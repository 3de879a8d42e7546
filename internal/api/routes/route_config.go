package routes

import (
	"Smart-Fridge-Backend/internal/api/handlers"
	"Smart-Fridge-Backend/internal/middleware"
	"Smart-Fridge-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	CatalogHandler   handlers.CatalogHandler
	OrderHandler     handlers.OrderHandler
	InventoryHandler handlers.InventoryHandler
	RecipeHandler    handlers.RecipeHandler
	ReceiptHandler   handlers.ReceiptHandler
	PaymentHandler   handlers.PaymentHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Orders()
	c.Ingredients()
	c.Recipes()
	c.Receipts()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Catalog() {
	stores := c.App.Group("/api/v1/stores")
	{
		stores.Get("", c.CatalogHandler.GetStores)
		stores.Get("/:id", c.CatalogHandler.GetStoreDetails)
		stores.Get("/:id/products", c.CatalogHandler.GetStoreProducts)
	}

	products := c.App.Group("/api/v1/products")
	{
		products.Get("", c.CatalogHandler.GetProducts)
		products.Get("/:id", c.CatalogHandler.GetProductDetails)
		products.Post("/barcode", c.CatalogHandler.LookupBarcode)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))

	orders.Get("", c.OrderHandler.GetOrders)
	orders.Post("", c.OrderHandler.AddToOrder)
	orders.Patch("/:id", c.OrderHandler.UpdateOrder)
	orders.Delete("/:id", c.OrderHandler.RemoveFromOrder)

	orders.Post("/confirm", c.OrderHandler.ConfirmOrder)
	orders.Post("/checkout", c.OrderHandler.CheckoutOrder)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))

	ingredients.Get("", c.InventoryHandler.GetIngredients)
	ingredients.Post("", c.InventoryHandler.AddIngredient)
	ingredients.Post("/batch", c.InventoryHandler.AddIngredients)
	ingredients.Patch("/:id/expiry", c.InventoryHandler.UpdateExpiryDate)
	ingredients.Delete("/:id", c.InventoryHandler.DeleteIngredient)

	ingredients.Get("/expiring", c.InventoryHandler.GetExpiringSummary)
	ingredients.Post("/expiring/remind", c.InventoryHandler.SendExpiryReminder)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.GetRecommendations)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Post("/:id/fill-order", c.RecipeHandler.FillMissingToOrder)
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))

	receipts.Post("/scan", c.ReceiptHandler.UploadReceipt)
	receipts.Post("/confirm", c.ReceiptHandler.ConfirmReceipt)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransWebhook)
}
