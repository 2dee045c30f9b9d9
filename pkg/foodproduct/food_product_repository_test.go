package foodproduct

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

func TestDeleteFoodProductsScopedByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodProductRepository(db)

	userID := uuid.New().String()
	productIDs := []string{uuid.New().String(), uuid.New().String()}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "food_products" WHERE user_id = \$1 AND id IN \(\$2,\$3\)`).
		WithArgs(userID, productIDs[0], productIDs[1]).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	deleted, err := repo.DeleteFoodProducts(context.Background(), userID, productIDs)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFoodProductsNoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodProductRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "food_products"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.DeleteFoodProducts(context.Background(), uuid.New().String(), []string{uuid.New().String()})
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestGetFoodProductsByUserOrdersByAddedDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFoodProductRepository(db)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "product_name", "quantity"}).
		AddRow(uuid.New().String(), userID.String(), "Milk", "1 L").
		AddRow(uuid.New().String(), userID.String(), "Bread", "1 loaf")

	mock.ExpectQuery(`SELECT \* FROM "food_products" WHERE user_id = \$1 ORDER BY added_date desc`).
		WithArgs(userID.String()).
		WillReturnRows(rows)

	foodProducts, err := repo.GetFoodProductsByUser(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, foodProducts, 2)
	assert.Equal(t, "Milk", foodProducts[0].ProductName)
	assert.Equal(t, "Bread", foodProducts[1].ProductName)
}
