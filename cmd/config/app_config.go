package config

import (
	"os"
	"strconv"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/internal/api/handlers"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/api/routes"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/middleware"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/utils"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/utils/storage"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/foodproduct"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/gemini"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/jwt"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/openfoodfacts"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/recipe"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	expiringWindowDays, err := strconv.Atoi(utils.GetConfig("EXPIRING_WINDOW_DAYS"))
	if err != nil {
		expiringWindowDays = 3
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodProductRepository := foodproduct.NewFoodProductRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodProductService := foodproduct.NewFoodProductService(foodProductRepository, expiringWindowDays)
	recipeService := recipe.NewRecipeService(recipeRepository)
	geminiClient := gemini.NewGeminiClient()
	geminiService := gemini.NewGeminiService(geminiClient, foodProductRepository, s3)
	openFoodFactsClient := openfoodfacts.NewOpenFoodFactsClient()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodProductHandler := handlers.NewFoodProductHandler(foodProductService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	geminiHandler := handlers.NewGeminiHandler(geminiService, validator)
	openFoodFactsHandler := handlers.NewOpenFoodFactsHandler(openFoodFactsClient)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		UserHandler:          userHandler,
		FoodProductHandler:   foodProductHandler,
		RecipeHandler:        recipeHandler,
		GeminiHandler:        geminiHandler,
		OpenFoodFactsHandler: openFoodFactsHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
