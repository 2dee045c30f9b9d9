package domain

import "errors"

var (
	MessageSuccessGenerateRecipe = "recipe generated successfully"
	MessageSuccessExtractProduct = "product extracted successfully"

	MessageFailedGenerateRecipe = "failed to generate recipe"
	MessageFailedExtractProduct = "failed to extract product from image"

	ErrGeminiAPIFailed      = errors.New("gemini API processing failed")
	ErrNoIngredients        = errors.New("no ingredients available for recipe generation")
	ErrEmptyPrompt          = errors.New("prompt must not be empty")
	ErrImageRequired        = errors.New("image payload is required")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image exceeds maximum allowed size")
)

type (
	GenerateRecipeRequest struct {
		ProductIDs []string `json:"productIds" validate:"required,min=1,dive,uuid"`
	}

	GeneratedRecipeResponse struct {
		Title        string   `json:"title"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
	}

	ExtractedProduct struct {
		ProductName    string `json:"productName"`
		Quantity       string `json:"quantity"`
		Brand          string `json:"brand"`
		Category       string `json:"category"`
		ExpirationDate string `json:"expirationDate,omitempty"`
	}

	ExtractProductResponse struct {
		ExtractedProduct
		ImageURL string `json:"imageUrl,omitempty"`
	}
)
