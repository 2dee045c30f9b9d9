package handlers

import (
	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/api/presenters"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/openfoodfacts"
	"github.com/gofiber/fiber/v2"
)

type (
	OpenFoodFactsHandler interface {
		GetProductByBarcode(c *fiber.Ctx) error
	}

	openFoodFactsHandler struct {
		client openfoodfacts.OpenFoodFactsClient
	}
)

func NewOpenFoodFactsHandler(client openfoodfacts.OpenFoodFactsClient) OpenFoodFactsHandler {
	return &openFoodFactsHandler{client: client}
}

func (h *openFoodFactsHandler) GetProductByBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	product, err := h.client.GetProductByBarcode(c.Context(), barcode)
	if err != nil {
		if err == domain.ErrBarcodeRequired {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBarcodeLookup, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedBarcodeLookup, err)
	}

	if !product.Found {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageProductNotFound, nil)
	}

	return presenters.SuccessResponse(c, product, fiber.StatusOK, domain.MessageSuccessBarcodeLookup)
}
