package handlers

import (
	"mealmate/domain"
	"mealmate/internal/api/presenters"
	"mealmate/pkg/allergy"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AllergyHandler interface {
		GetAllergies(c *fiber.Ctx) error
		UpdateAllergies(c *fiber.Ctx) error
	}

	allergyHandler struct {
		allergyService allergy.AllergyService
		validator      *validator.Validate
	}
)

func NewAllergyHandler(allergyService allergy.AllergyService, validator *validator.Validate) AllergyHandler {
	return &allergyHandler{
		allergyService: allergyService,
		validator:      validator,
	}
}

func (h *allergyHandler) GetAllergies(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.allergyService.GetAllergies(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllergies, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllergies)
}

func (h *allergyHandler) UpdateAllergies(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateAllergiesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAllergies, err)
	}

	if err := h.allergyService.UpdateAllergies(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAllergies, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateAllergies)
}
