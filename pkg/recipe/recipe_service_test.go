package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	createFn func(ctx context.Context, recipe *entities.Recipe) error
	getAllFn func(ctx context.Context, userID string) ([]*entities.Recipe, error)
	getFn    func(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error)
	updateFn func(ctx context.Context, recipe *entities.Recipe) error
	deleteFn func(ctx context.Context, recipeID string, userID string) (int64, error)
}

func (f *fakeRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return f.createFn(ctx, recipe)
}

func (f *fakeRecipeRepository) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	return f.getAllFn(ctx, userID)
}

func (f *fakeRecipeRepository) GetRecipeByIDForUser(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error) {
	return f.getFn(ctx, recipeID, userID)
}

func (f *fakeRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return f.updateFn(ctx, recipe)
}

func (f *fakeRecipeRepository) DeleteRecipe(ctx context.Context, recipeID string, userID string) (int64, error) {
	return f.deleteFn(ctx, recipeID, userID)
}

func TestAddForUserJoinsListsAndRoundTrips(t *testing.T) {
	var saved *entities.Recipe
	service := NewRecipeService(&fakeRecipeRepository{
		createFn: func(_ context.Context, recipe *entities.Recipe) error {
			saved = recipe
			return nil
		},
	})

	res, err := service.AddForUser(context.Background(), domain.AddRecipeRequest{
		Title:        "Pasta",
		Ingredients:  []string{"Noodles", "Tomato"},
		Instructions: []string{"Boil noodles", "Add tomato"},
	}, uuid.New().String())
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "Noodles\nTomato", saved.Ingredients)
	assert.Equal(t, "Boil noodles\nAdd tomato", saved.Instructions)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	// Stored text splits back into the same ordered lists.
	assert.Equal(t, []string{"Noodles", "Tomato"}, res.Ingredients)
	assert.Equal(t, []string{"Boil noodles", "Add tomato"}, res.Instructions)
}

func TestAddForUserValidation(t *testing.T) {
	service := NewRecipeService(&fakeRecipeRepository{})

	_, err := service.AddForUser(context.Background(), domain.AddRecipeRequest{Title: "Pasta"}, "")
	assert.ErrorIs(t, err, domain.ErrUserIDRequired)

	_, err = service.AddForUser(context.Background(), domain.AddRecipeRequest{Title: "   "}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeTitleRequired)
}

func TestGetAllForUserSplitsStoredText(t *testing.T) {
	service := NewRecipeService(&fakeRecipeRepository{
		getAllFn: func(context.Context, string) ([]*entities.Recipe, error) {
			return []*entities.Recipe{
				{
					ID:           uuid.New(),
					Title:        "Toast",
					Ingredients:  "Bread\n\nButter",
					Instructions: "Toast it",
					Timestamp:    entities.Timestamp{CreatedAt: time.Now().UTC()},
				},
			}, nil
		},
	})

	res, err := service.GetAllForUser(context.Background(), uuid.New().String())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []string{"Bread", "Butter"}, res[0].Ingredients)
	assert.Equal(t, []string{"Toast it"}, res[0].Instructions)
}

func TestUpdateForUserPartialMerge(t *testing.T) {
	stored := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Title:        "Pasta",
		Ingredients:  "Noodles\nTomato",
		Instructions: "Boil noodles\nAdd tomato",
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now().UTC().Add(-time.Hour),
			UpdatedAt: time.Now().UTC().Add(-time.Hour),
		},
	}
	service := NewRecipeService(&fakeRecipeRepository{
		getFn: func(context.Context, string, string) (*entities.Recipe, error) {
			return stored, nil
		},
		updateFn: func(context.Context, *entities.Recipe) error {
			return nil
		},
	})

	res, err := service.UpdateForUser(context.Background(), stored.ID.String(), domain.UpdateRecipeRequest{
		Title: "Pasta Deluxe",
	}, stored.UserID.String())
	require.NoError(t, err)

	assert.Equal(t, "Pasta Deluxe", res.Title)
	assert.Equal(t, []string{"Noodles", "Tomato"}, res.Ingredients)
	assert.Equal(t, []string{"Boil noodles", "Add tomato"}, res.Instructions)
	assert.True(t, res.UpdatedAt.After(res.CreatedAt))
}

func TestUpdateForUserNothingSupplied(t *testing.T) {
	service := NewRecipeService(&fakeRecipeRepository{})

	_, err := service.UpdateForUser(context.Background(), uuid.New().String(), domain.UpdateRecipeRequest{
		Title: "   ",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)
}

func TestUpdateForUserNotFound(t *testing.T) {
	service := NewRecipeService(&fakeRecipeRepository{
		getFn: func(context.Context, string, string) (*entities.Recipe, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	_, err := service.UpdateForUser(context.Background(), uuid.New().String(), domain.UpdateRecipeRequest{
		Title: "Pasta",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteForUser(t *testing.T) {
	service := NewRecipeService(&fakeRecipeRepository{
		deleteFn: func(context.Context, string, string) (int64, error) {
			return 1, nil
		},
	})
	assert.NoError(t, service.DeleteForUser(context.Background(), uuid.New().String(), uuid.New().String()))

	notOwned := NewRecipeService(&fakeRecipeRepository{
		deleteFn: func(context.Context, string, string) (int64, error) {
			return 0, nil
		},
	})
	err := notOwned.DeleteForUser(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	assert.ErrorIs(t, service.DeleteForUser(context.Background(), "", uuid.New().String()), domain.ErrRecipeIDRequired)
	assert.ErrorIs(t, service.DeleteForUser(context.Background(), uuid.New().String(), ""), domain.ErrUserIDRequired)
}
