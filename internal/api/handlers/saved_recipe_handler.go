package handlers

import (
	"mealmate/domain"
	"mealmate/internal/api/presenters"
	"mealmate/pkg/savedrecipe"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SavedRecipeHandler interface {
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
		GetSavedStatus(c *fiber.Ctx) error
	}

	savedRecipeHandler struct {
		savedRecipeService savedrecipe.SavedRecipeService
		validator          *validator.Validate
	}
)

func NewSavedRecipeHandler(savedRecipeService savedrecipe.SavedRecipeService, validator *validator.Validate) SavedRecipeHandler {
	return &savedRecipeHandler{
		savedRecipeService: savedRecipeService,
		validator:          validator,
	}
}

func (h *savedRecipeHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	outcome, err := h.savedRecipeService.SaveRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	if outcome == domain.SaveOutcomeAlreadySaved {
		return presenters.SuccessResponse(c, fiber.Map{"outcome": outcome}, fiber.StatusOK, domain.MessageRecipeAlreadySaved)
	}

	return presenters.SuccessResponse(c, fiber.Map{"outcome": outcome}, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *savedRecipeHandler) UnsaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipeID, err := strconv.Atoi(c.Params("id"))
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveRecipe, domain.ErrSavedRecipeNotFound)
	}

	if err := h.savedRecipeService.UnsaveRecipe(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}

func (h *savedRecipeHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	res, err := h.savedRecipeService.GetSavedRecipes(c.Context(), page, limit, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSaved, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": res.Recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       res.Total,
			"total_pages": (res.Total + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSaved)
}

func (h *savedRecipeHandler) GetSavedStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipeID, err := strconv.Atoi(c.Params("id"))
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSaved, domain.ErrSavedRecipeNotFound)
	}

	isSaved, err := h.savedRecipeService.IsRecipeSaved(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSaved, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipe_id": recipeID, "is_saved": isSaved}, fiber.StatusOK, domain.MessageSuccessGetSavedState)
}
