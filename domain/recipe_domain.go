package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddRecipe    = "recipe added successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"

	MessageFailedAddRecipe    = "failed to add recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"

	ErrRecipeTitleRequired = errors.New("recipe title is required")
	ErrRecipeIDRequired    = errors.New("recipe id is required")
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrNothingToUpdate     = errors.New("nothing to update")
)

type (
	AddRecipeRequest struct {
		Title        string   `json:"title" validate:"required"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
	}

	UpdateRecipeRequest struct {
		Title        string   `json:"title"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
	}

	RecipeResponse struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Ingredients  []string  `json:"ingredients"`
		Instructions []string  `json:"instructions"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}
)
