package routes

import (
	"mealmate/internal/api/handlers"
	"mealmate/internal/middleware"
	"mealmate/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	SavedRecipeHandler  handlers.SavedRecipeHandler
	AllergyHandler      handlers.AllergyHandler
	ShoppingListHandler handlers.ShoppingListHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.SavedRecipes()
	c.Allergies()
	c.ShoppingList()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("", c.RecipeHandler.SearchRecipes)
	recipes.Get("/random", c.RecipeHandler.GetRandomRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) SavedRecipes() {
	saved := c.App.Group("/api/v1/saved-recipes", c.Middleware.AuthMiddleware(c.JWTService))
	saved.Post("", c.SavedRecipeHandler.SaveRecipe)
	saved.Get("", c.SavedRecipeHandler.GetSavedRecipes)
	saved.Get("/:id/status", c.SavedRecipeHandler.GetSavedStatus)
	saved.Delete("/:id", c.SavedRecipeHandler.UnsaveRecipe)
}

func (c *Config) Allergies() {
	allergies := c.App.Group("/api/v1/allergies", c.Middleware.AuthMiddleware(c.JWTService))
	allergies.Get("", c.AllergyHandler.GetAllergies)
	allergies.Put("", c.AllergyHandler.UpdateAllergies)
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))
	shoppingList.Post("/generate", c.ShoppingListHandler.Generate)
	shoppingList.Post("/email", c.ShoppingListHandler.EmailShoppingList)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
