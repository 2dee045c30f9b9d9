package foodproduct

import (
	"context"
	"testing"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodProductRepository struct {
	addFn    func(ctx context.Context, foodProduct *entities.FoodProduct) error
	getFn    func(ctx context.Context, userID string) ([]*entities.FoodProduct, error)
	getIDsFn func(ctx context.Context, userID string, productIDs []string) ([]*entities.FoodProduct, error)
	deleteFn func(ctx context.Context, userID string, productIDs []string) (int64, error)
}

func (f *fakeFoodProductRepository) AddFoodProduct(ctx context.Context, foodProduct *entities.FoodProduct) error {
	return f.addFn(ctx, foodProduct)
}

func (f *fakeFoodProductRepository) GetFoodProductsByUser(ctx context.Context, userID string) ([]*entities.FoodProduct, error) {
	return f.getFn(ctx, userID)
}

func (f *fakeFoodProductRepository) GetFoodProductsByIDs(ctx context.Context, userID string, productIDs []string) ([]*entities.FoodProduct, error) {
	return f.getIDsFn(ctx, userID, productIDs)
}

func (f *fakeFoodProductRepository) DeleteFoodProducts(ctx context.Context, userID string, productIDs []string) (int64, error) {
	return f.deleteFn(ctx, userID, productIDs)
}

func TestAddForUserValidation(t *testing.T) {
	service := NewFoodProductService(&fakeFoodProductRepository{}, 3)
	userID := uuid.New().String()

	_, err := service.AddForUser(context.Background(), domain.AddFoodProductRequest{ProductName: "Milk", Quantity: "1 L"}, "")
	assert.ErrorIs(t, err, domain.ErrUserIDRequired)

	_, err = service.AddForUser(context.Background(), domain.AddFoodProductRequest{ProductName: "  ", Quantity: "1 L"}, userID)
	assert.ErrorIs(t, err, domain.ErrProductFieldsRequired)

	_, err = service.AddForUser(context.Background(), domain.AddFoodProductRequest{ProductName: "Milk", Quantity: ""}, userID)
	assert.ErrorIs(t, err, domain.ErrProductFieldsRequired)

	_, err = service.AddForUser(context.Background(), domain.AddFoodProductRequest{
		ProductName:    "Milk",
		Quantity:       "1 L",
		ExpirationDate: "01-01-2030",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestAddForUserPersistsAndReturnsStatus(t *testing.T) {
	var saved *entities.FoodProduct
	repo := &fakeFoodProductRepository{
		addFn: func(_ context.Context, foodProduct *entities.FoodProduct) error {
			saved = foodProduct
			return nil
		},
	}
	service := NewFoodProductService(repo, 3)
	userID := uuid.New().String()

	res, err := service.AddForUser(context.Background(), domain.AddFoodProductRequest{
		ProductName:    "Milk",
		Quantity:       "1 L",
		Brands:         "DairyCo",
		Category:       "Dairy",
		ExpirationDate: "2030-01-01",
	}, userID)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, userID, saved.UserID.String())
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.WithinDuration(t, time.Now().UTC(), saved.AddedDate, time.Minute)
	require.NotNil(t, saved.ExpirationDate)
	assert.Equal(t, "2030-01-01", saved.ExpirationDate.Format("2006-01-02"))

	assert.Equal(t, domain.FoodStatusFresh, res.Status)
	require.NotNil(t, res.ExpirationDate)
	assert.Equal(t, "2030-01-01", *res.ExpirationDate)
}

func TestAddForUserWrapsRepositoryFailure(t *testing.T) {
	repo := &fakeFoodProductRepository{
		addFn: func(context.Context, *entities.FoodProduct) error {
			return assert.AnError
		},
	}
	service := NewFoodProductService(repo, 3)

	_, err := service.AddForUser(context.Background(), domain.AddFoodProductRequest{
		ProductName: "Milk",
		Quantity:    "1 L",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrDatabaseFailure)
}

func TestDetermineStatus(t *testing.T) {
	date := func(value string) *time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return &parsed
	}
	now := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return parsed
	}

	tests := []struct {
		name       string
		expiration *time.Time
		today      time.Time
		want       string
	}{
		{"no expiration date", nil, now("2025-06-01"), domain.FoodStatusFresh},
		{"well before window", date("2030-01-01"), now("2025-06-01"), domain.FoodStatusFresh},
		{"just outside window", date("2030-01-01"), now("2029-12-28"), domain.FoodStatusFresh},
		{"window boundary", date("2030-01-01"), now("2029-12-29"), domain.FoodStatusExpiring},
		{"expires today", date("2030-01-01"), now("2030-01-01"), domain.FoodStatusExpiring},
		{"day after expiry", date("2030-01-01"), now("2030-01-02"), domain.FoodStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineStatus(tt.expiration, tt.today, 3))
		})
	}
}

func TestGetAllForUserComputesStatuses(t *testing.T) {
	expired := time.Now().UTC().AddDate(0, 0, -2)
	expiring := time.Now().UTC().AddDate(0, 0, 1)
	repo := &fakeFoodProductRepository{
		getFn: func(context.Context, string) ([]*entities.FoodProduct, error) {
			return []*entities.FoodProduct{
				{ID: uuid.New(), ProductName: "Old Milk", Quantity: "1 L", ExpirationDate: &expired},
				{ID: uuid.New(), ProductName: "Yogurt", Quantity: "500 g", ExpirationDate: &expiring},
				{ID: uuid.New(), ProductName: "Salt", Quantity: "1 kg"},
			}, nil
		},
	}
	service := NewFoodProductService(repo, 3)

	res, err := service.GetAllForUser(context.Background(), uuid.New().String())
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, domain.FoodStatusExpired, res[0].Status)
	assert.Equal(t, domain.FoodStatusExpiring, res[1].Status)
	assert.Equal(t, domain.FoodStatusFresh, res[2].Status)
	assert.Nil(t, res[2].ExpirationDate)

	_, err = service.GetAllForUser(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUserIDRequired)
}

func TestDeleteForUser(t *testing.T) {
	service := NewFoodProductService(&fakeFoodProductRepository{
		deleteFn: func(context.Context, string, []string) (int64, error) {
			return 2, nil
		},
	}, 3)

	deleted, err := service.DeleteForUser(context.Background(), []string{uuid.New().String(), uuid.New().String()}, uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = service.DeleteForUser(context.Background(), nil, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrProductIDsRequired)

	_, err = service.DeleteForUser(context.Background(), []string{uuid.New().String()}, "")
	assert.ErrorIs(t, err, domain.ErrUserIDRequired)
}

func TestDeleteForUserNothingMatched(t *testing.T) {
	// Ids that exist but belong to someone else affect zero rows.
	service := NewFoodProductService(&fakeFoodProductRepository{
		deleteFn: func(context.Context, string, []string) (int64, error) {
			return 0, nil
		},
	}, 3)

	_, err := service.DeleteForUser(context.Background(), []string{uuid.New().String()}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNothingToDelete)
}
