package foodproduct

import (
	"context"

	"github.com/MeyerNigrini/SmartPantry-sub000/entities"
	"gorm.io/gorm"
)

type (
	FoodProductRepository interface {
		AddFoodProduct(ctx context.Context, foodProduct *entities.FoodProduct) error
		GetFoodProductsByUser(ctx context.Context, userID string) ([]*entities.FoodProduct, error)
		GetFoodProductsByIDs(ctx context.Context, userID string, productIDs []string) ([]*entities.FoodProduct, error)
		DeleteFoodProducts(ctx context.Context, userID string, productIDs []string) (int64, error)
	}

	foodProductRepository struct {
		db *gorm.DB
	}
)

func NewFoodProductRepository(db *gorm.DB) FoodProductRepository {
	return &foodProductRepository{db: db}
}

func (r *foodProductRepository) AddFoodProduct(ctx context.Context, foodProduct *entities.FoodProduct) error {
	return r.db.WithContext(ctx).Create(foodProduct).Error
}

func (r *foodProductRepository) GetFoodProductsByUser(ctx context.Context, userID string) ([]*entities.FoodProduct, error) {
	var foodProducts []*entities.FoodProduct
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_date desc").
		Find(&foodProducts).Error; err != nil {
		return nil, err
	}
	return foodProducts, nil
}

func (r *foodProductRepository) GetFoodProductsByIDs(ctx context.Context, userID string, productIDs []string) ([]*entities.FoodProduct, error) {
	var foodProducts []*entities.FoodProduct
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, productIDs).
		Find(&foodProducts).Error; err != nil {
		return nil, err
	}
	return foodProducts, nil
}

func (r *foodProductRepository) DeleteFoodProducts(ctx context.Context, userID string, productIDs []string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, productIDs).
		Delete(&entities.FoodProduct{})
	return tx.RowsAffected, tx.Error
}
