package handlers

import (
	"errors"
	"mealmate/domain"
	"mealmate/internal/api/presenters"
	"mealmate/pkg/recipe"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		SearchRecipes(c *fiber.Ctx) error
		GetRandomRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{recipeService: recipeService}
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	params := domain.RecipeSearchParams{
		Query:    c.Query("query", ""),
		Cuisine:  c.Query("cuisine", ""),
		Diet:     c.Query("diet", ""),
		MealType: c.Query("type", ""),
	}

	if maxReadyTime, err := strconv.Atoi(c.Query("max_ready_time", "0")); err == nil && maxReadyTime > 0 {
		params.MaxReadyTime = maxReadyTime
	}

	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	params.Offset = offset

	number, err := strconv.Atoi(c.Query("number", "10"))
	if err != nil || number < 1 {
		number = 10
	}
	params.Number = number

	res, err := h.recipeService.SearchRecipes(c.Context(), params, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) GetRandomRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	number, err := strconv.Atoi(c.Query("number", "10"))
	if err != nil || number < 1 {
		number = 10
	}

	res, err := h.recipeService.GetRandomRecipes(c.Context(), number, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRandom, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipes": res}, fiber.StatusOK, domain.MessageSuccessGetRandom)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipeID, err := strconv.Atoi(c.Params("id"))
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}
