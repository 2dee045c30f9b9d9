package routes

import (
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/api/handlers"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/middleware"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	UserHandler          handlers.UserHandler
	FoodProductHandler   handlers.FoodProductHandler
	RecipeHandler        handlers.RecipeHandler
	GeminiHandler        handlers.GeminiHandler
	OpenFoodFactsHandler handlers.OpenFoodFactsHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodProducts()
	c.Recipes()
	c.Gemini()
	c.OpenFoodFacts()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/user")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) FoodProducts() {
	foodProducts := c.App.Group("/api/foodproduct", c.Middleware.AuthMiddleware(c.JWTService))

	foodProducts.Post("/addFoodProductForUser", c.FoodProductHandler.AddFoodProductForUser)
	foodProducts.Get("/getAllFoodProductsForUser", c.FoodProductHandler.GetAllFoodProductsForUser)
	foodProducts.Delete("/deleteFoodProductsForUser", c.FoodProductHandler.DeleteFoodProductsForUser)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipe", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("/addRecipeForUser", c.RecipeHandler.AddRecipeForUser)
	recipes.Get("/getAllRecipesForUser", c.RecipeHandler.GetAllRecipesForUser)
	recipes.Patch("/updateRecipeForUser/:id", c.RecipeHandler.UpdateRecipeForUser)
	recipes.Delete("/deleteRecipeForUser/:id", c.RecipeHandler.DeleteRecipeForUser)
}

func (c *Config) Gemini() {
	gemini := c.App.Group("/api/gemini", c.Middleware.AuthMiddleware(c.JWTService))

	gemini.Post("/generate-recipe", c.GeminiHandler.GenerateRecipe)
	gemini.Post("/extract-product", c.GeminiHandler.ExtractProduct)
}

func (c *Config) OpenFoodFacts() {
	openFoodFacts := c.App.Group("/api/openfoodfacts", c.Middleware.AuthMiddleware(c.JWTService))

	openFoodFacts.Get("/:barcode", c.OpenFoodFactsHandler.GetProductByBarcode)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
