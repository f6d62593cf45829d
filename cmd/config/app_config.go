package config

import (
	"mealmate/internal/api/handlers"
	"mealmate/internal/api/routes"
	"mealmate/internal/middleware"
	"mealmate/internal/platform/spoonacular"
	"mealmate/internal/utils"
	"mealmate/internal/utils/storage"
	"mealmate/pkg/allergy"
	"mealmate/pkg/jwt"
	"mealmate/pkg/recipe"
	"mealmate/pkg/savedrecipe"
	"mealmate/pkg/shoppinglist"
	"mealmate/pkg/user"
	"os"
	"time"

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
	provider := spoonacular.NewClient(
		utils.GetConfig("RECIPE_API_URL"),
		utils.GetConfig("RECIPE_API_KEY"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	savedRecipeRepository := savedrecipe.NewSavedRecipeRepository(db)
	allergyRepository := allergy.NewAllergyRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(provider, savedRecipeRepository, allergyRepository)
	savedRecipeService := savedrecipe.NewSavedRecipeService(savedRecipeRepository, provider, s3)
	allergyService := allergy.NewAllergyService(allergyRepository)
	shoppingListService := shoppinglist.NewShoppingListService(savedRecipeRepository, provider)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	savedRecipeHandler := handlers.NewSavedRecipeHandler(savedRecipeService, validator)
	allergyHandler := handlers.NewAllergyHandler(allergyService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		SavedRecipeHandler:  savedRecipeHandler,
		AllergyHandler:      allergyHandler,
		ShoppingListHandler: shoppingListHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
