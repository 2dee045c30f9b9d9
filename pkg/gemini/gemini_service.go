package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/utils/storage"
	"github.com/MeyerNigrini/SmartPantry-sub000/pkg/foodproduct"
	"github.com/google/uuid"
)

type (
	GeminiService interface {
		GenerateRecipeFromProducts(ctx context.Context, productIDs []string, userID string) (domain.GeneratedRecipeResponse, error)
		ExtractProductFromImage(ctx context.Context, image *multipart.FileHeader) (domain.ExtractProductResponse, error)
	}

	geminiService struct {
		client                GeminiClient
		foodProductRepository foodproduct.FoodProductRepository
		s3                    storage.AwsS3
	}
)

func NewGeminiService(client GeminiClient, foodProductRepository foodproduct.FoodProductRepository, s3 storage.AwsS3) GeminiService {
	return &geminiService{
		client:                client,
		foodProductRepository: foodProductRepository,
		s3:                    s3,
	}
}

func (s *geminiService) GenerateRecipeFromProducts(ctx context.Context, productIDs []string, userID string) (domain.GeneratedRecipeResponse, error) {
	if userID == "" {
		return domain.GeneratedRecipeResponse{}, domain.ErrUserIDRequired
	}
	if len(productIDs) == 0 {
		return domain.GeneratedRecipeResponse{}, domain.ErrProductIDsRequired
	}

	foodProducts, err := s.foodProductRepository.GetFoodProductsByIDs(ctx, userID, productIDs)
	if err != nil {
		log.Printf("gemini: fetching products failed: %v", err)
		return domain.GeneratedRecipeResponse{}, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}
	if len(foodProducts) == 0 {
		return domain.GeneratedRecipeResponse{}, domain.ErrNoIngredients
	}

	ingredients := make([]string, 0, len(foodProducts))
	for _, item := range foodProducts {
		ingredients = append(ingredients, fmt.Sprintf("%s (%s)", item.ProductName, item.Quantity))
	}

	prompt := fmt.Sprintf(
		"You are a professional chef. Given these available ingredients: %s, "+
			"create one realistic recipe that uses as many of them as possible. "+
			"Respond ONLY with a valid JSON object with exactly these fields: "+
			"'title' (string), 'ingredients' (array of strings), 'instructions' (array of strings, one step each). "+
			"Do not include any explanations or text outside of the JSON object.",
		strings.Join(ingredients, ", "),
	)

	responseText, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return domain.GeneratedRecipeResponse{}, err
	}

	var generated domain.GeneratedRecipeResponse
	if err := json.Unmarshal([]byte(responseText), &generated); err != nil {
		return domain.GeneratedRecipeResponse{}, fmt.Errorf("%w: unparseable recipe response: %v", domain.ErrGeminiAPIFailed, err)
	}
	if strings.TrimSpace(generated.Title) == "" {
		return domain.GeneratedRecipeResponse{}, fmt.Errorf("%w: recipe response missing title", domain.ErrGeminiAPIFailed)
	}

	return generated, nil
}

func (s *geminiService) ExtractProductFromImage(ctx context.Context, image *multipart.FileHeader) (domain.ExtractProductResponse, error) {
	if image == nil {
		return domain.ExtractProductResponse{}, domain.ErrImageRequired
	}

	file, err := image.Open()
	if err != nil {
		return domain.ExtractProductResponse{}, domain.ErrImageRequired
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return domain.ExtractProductResponse{}, domain.ErrImageRequired
	}

	extracted, err := s.client.ExtractProduct(ctx, imageData, detectMimeType(image))
	if err != nil {
		return domain.ExtractProductResponse{}, err
	}

	response := domain.ExtractProductResponse{ExtractedProduct: extracted}

	// The capture is kept for reference. Extraction already succeeded, so a
	// failed upload only costs the link.
	fileName := fmt.Sprintf("product-capture-%s", uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, image, "product-captures", storage.AllowImage...)
	if err != nil {
		log.Printf("gemini: storing captured image failed: %v", err)
		return response, nil
	}
	response.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	return response, nil
}

func detectMimeType(image *multipart.FileHeader) string {
	mimeType := image.Header.Get("Content-Type")
	if mimeType != "" {
		return mimeType
	}

	switch strings.ToLower(filepath.Ext(image.Filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
