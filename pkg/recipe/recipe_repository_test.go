package recipe

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestDeleteRecipeScopedByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	recipeID := uuid.New().String()
	userID := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "recipes" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(recipeID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.DeleteRecipe(context.Background(), recipeID, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipesByUserNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "ingredients", "instructions"}).
		AddRow(uuid.New().String(), userID.String(), "Newer", "Bread", "Toast it").
		AddRow(uuid.New().String(), userID.String(), "Older", "Noodles\nTomato", "Boil\nMix")

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE user_id = \$1 ORDER BY created_at desc`).
		WithArgs(userID.String()).
		WillReturnRows(rows)

	recipes, err := repo.GetRecipesByUser(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Newer", recipes[0].Title)
	assert.Equal(t, "Older", recipes[1].Title)
}
