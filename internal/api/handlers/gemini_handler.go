package handlers

import (
	"errors"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/api/presenters"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/gemini"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GeminiHandler interface {
		GenerateRecipe(c *fiber.Ctx) error
		ExtractProduct(c *fiber.Ctx) error
	}

	geminiHandler struct {
		geminiService gemini.GeminiService
		validator     *validator.Validate
	}
)

func NewGeminiHandler(geminiService gemini.GeminiService, validator *validator.Validate) GeminiHandler {
	return &geminiHandler{
		geminiService: geminiService,
		validator:     validator,
	}
}

func (h *geminiHandler) GenerateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipe, err)
	}

	res, err := h.geminiService.GenerateRecipeFromProducts(c.Context(), req.ProductIDs, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGenerateRecipe, err)
		}
		if errors.Is(err, domain.ErrGeminiAPIFailed) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGenerateRecipe, err)
		}
		if errors.Is(err, domain.ErrDatabaseFailure) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipe)
}

func (h *geminiHandler) ExtractProduct(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExtractProduct, domain.ErrImageRequired)
	}

	res, err := h.geminiService.ExtractProductFromImage(c.Context(), image)
	if err != nil {
		if errors.Is(err, domain.ErrGeminiAPIFailed) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedExtractProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExtractProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExtractProduct)
}
