package recipe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddForUser(ctx context.Context, req domain.AddRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetAllForUser(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		UpdateForUser(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteForUser(ctx context.Context, recipeID string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) AddForUser(ctx context.Context, req domain.AddRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if userID == "" {
		return domain.RecipeResponse{}, domain.ErrUserIDRequired
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.RecipeResponse{}, domain.ErrRecipeTitleRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	now := time.Now().UTC()
	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Title:        title,
		Ingredients:  joinLines(req.Ingredients),
		Instructions: joinLines(req.Instructions),
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		log.Printf("recipe: persisting failed: %v", err)
		return domain.RecipeResponse{}, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	return toResponse(recipe), nil
}

func (s *recipeService) GetAllForUser(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		log.Printf("recipe: fetching for user failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) UpdateForUser(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if userID == "" {
		return domain.RecipeResponse{}, domain.ErrUserIDRequired
	}
	if recipeID == "" {
		return domain.RecipeResponse{}, domain.ErrRecipeIDRequired
	}

	title := strings.TrimSpace(req.Title)
	if title == "" && len(req.Ingredients) == 0 && len(req.Instructions) == 0 {
		return domain.RecipeResponse{}, domain.ErrNothingToUpdate
	}

	recipe, err := s.recipeRepository.GetRecipeByIDForUser(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		log.Printf("recipe: loading for update failed: %v", err)
		return domain.RecipeResponse{}, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	// Only fields the caller actually supplied are merged; blank title or
	// absent lists leave the stored values untouched.
	if title != "" {
		recipe.Title = title
	}
	if len(req.Ingredients) > 0 {
		recipe.Ingredients = joinLines(req.Ingredients)
	}
	if len(req.Instructions) > 0 {
		recipe.Instructions = joinLines(req.Instructions)
	}
	recipe.UpdatedAt = time.Now().UTC()

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		log.Printf("recipe: updating failed: %v", err)
		return domain.RecipeResponse{}, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	return toResponse(recipe), nil
}

func (s *recipeService) DeleteForUser(ctx context.Context, recipeID string, userID string) error {
	if userID == "" {
		return domain.ErrUserIDRequired
	}
	if recipeID == "" {
		return domain.ErrRecipeIDRequired
	}

	deleted, err := s.recipeRepository.DeleteRecipe(ctx, recipeID, userID)
	if err != nil {
		log.Printf("recipe: deleting failed: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}
	if deleted == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func toResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:           recipe.ID.String(),
		Title:        recipe.Title,
		Ingredients:  splitLines(recipe.Ingredients),
		Instructions: splitLines(recipe.Instructions),
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// splitLines reverses joinLines, dropping blank lines so stored padding
// never leaks back out as empty list entries.
func splitLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
