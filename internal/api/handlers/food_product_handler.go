package handlers

import (
	"errors"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/api/presenters"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/foodproduct"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodProductHandler interface {
		AddFoodProductForUser(c *fiber.Ctx) error
		GetAllFoodProductsForUser(c *fiber.Ctx) error
		DeleteFoodProductsForUser(c *fiber.Ctx) error
	}

	foodProductHandler struct {
		foodProductService foodproduct.FoodProductService
		validator          *validator.Validate
	}
)

func NewFoodProductHandler(foodProductService foodproduct.FoodProductService, validator *validator.Validate) FoodProductHandler {
	return &foodProductHandler{
		foodProductService: foodProductService,
		validator:          validator,
	}
}

func (h *foodProductHandler) AddFoodProductForUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodProduct, err)
	}

	res, err := h.foodProductService.AddForUser(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDatabaseFailure) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFoodProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodProduct)
}

func (h *foodProductHandler) GetAllFoodProductsForUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.foodProductService.GetAllForUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrDatabaseFailure) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodProducts, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodProducts)
}

func (h *foodProductHandler) DeleteFoodProductsForUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DeleteFoodProductsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodProducts, err)
	}

	deleted, err := h.foodProductService.DeleteForUser(c.Context(), req.ProductIDs, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDatabaseFailure) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFoodProducts, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodProducts, err)
	}

	return presenters.SuccessResponse(c, domain.DeleteFoodProductsResponse{Deleted: deleted}, fiber.StatusOK, domain.MessageSuccessDeleteFoodProducts)
}
