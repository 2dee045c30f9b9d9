package foodproduct

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/entities"
	"github.com/google/uuid"
)

type (
	FoodProductService interface {
		AddForUser(ctx context.Context, req domain.AddFoodProductRequest, userID string) (domain.FoodProductResponse, error)
		GetAllForUser(ctx context.Context, userID string) ([]domain.FoodProductResponse, error)
		DeleteForUser(ctx context.Context, productIDs []string, userID string) (int64, error)
	}

	foodProductService struct {
		foodProductRepository FoodProductRepository
		expiringWindowDays    int
	}
)

func NewFoodProductService(foodProductRepository FoodProductRepository, expiringWindowDays int) FoodProductService {
	if expiringWindowDays <= 0 {
		expiringWindowDays = 3
	}
	return &foodProductService{
		foodProductRepository: foodProductRepository,
		expiringWindowDays:    expiringWindowDays,
	}
}

func (s *foodProductService) AddForUser(ctx context.Context, req domain.AddFoodProductRequest, userID string) (domain.FoodProductResponse, error) {
	if userID == "" {
		return domain.FoodProductResponse{}, domain.ErrUserIDRequired
	}
	if strings.TrimSpace(req.ProductName) == "" || strings.TrimSpace(req.Quantity) == "" {
		return domain.FoodProductResponse{}, domain.ErrProductFieldsRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodProductResponse{}, domain.ErrParseUUID
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.FoodProductResponse{}, domain.ErrInvalidExpirationDate
		}
		expirationDate = &parsed
	}

	foodProduct := &entities.FoodProduct{
		ID:             uuid.New(),
		UserID:         userUUID,
		ProductName:    strings.TrimSpace(req.ProductName),
		Quantity:       strings.TrimSpace(req.Quantity),
		Brands:         req.Brands,
		Category:       req.Category,
		ExpirationDate: expirationDate,
		AddedDate:      time.Now().UTC(),
	}

	if err := s.foodProductRepository.AddFoodProduct(ctx, foodProduct); err != nil {
		log.Printf("food product: persisting failed: %v", err)
		return domain.FoodProductResponse{}, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	return s.toResponse(foodProduct, time.Now().UTC()), nil
}

func (s *foodProductService) GetAllForUser(ctx context.Context, userID string) ([]domain.FoodProductResponse, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	foodProducts, err := s.foodProductRepository.GetFoodProductsByUser(ctx, userID)
	if err != nil {
		log.Printf("food product: fetching for user failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}

	now := time.Now().UTC()
	response := make([]domain.FoodProductResponse, 0, len(foodProducts))
	for _, item := range foodProducts {
		response = append(response, s.toResponse(item, now))
	}
	return response, nil
}

func (s *foodProductService) DeleteForUser(ctx context.Context, productIDs []string, userID string) (int64, error) {
	if userID == "" {
		return 0, domain.ErrUserIDRequired
	}
	if len(productIDs) == 0 {
		return 0, domain.ErrProductIDsRequired
	}

	deleted, err := s.foodProductRepository.DeleteFoodProducts(ctx, userID, productIDs)
	if err != nil {
		log.Printf("food product: bulk delete failed: %v", err)
		return 0, fmt.Errorf("%w: %v", domain.ErrDatabaseFailure, err)
	}
	if deleted == 0 {
		return 0, domain.ErrNothingToDelete
	}
	return deleted, nil
}

func (s *foodProductService) toResponse(item *entities.FoodProduct, now time.Time) domain.FoodProductResponse {
	var expirationDate *string
	if item.ExpirationDate != nil {
		formatted := item.ExpirationDate.Format("2006-01-02")
		expirationDate = &formatted
	}

	return domain.FoodProductResponse{
		ID:             item.ID.String(),
		ProductName:    item.ProductName,
		Quantity:       item.Quantity,
		Brands:         item.Brands,
		Category:       item.Category,
		ExpirationDate: expirationDate,
		Status:         determineStatus(item.ExpirationDate, now, s.expiringWindowDays),
		AddedDate:      item.AddedDate,
	}
}

// determineStatus derives the freshness status from the expiration date.
// Products without one never expire.
func determineStatus(expirationDate *time.Time, now time.Time, windowDays int) string {
	if expirationDate == nil {
		return domain.FoodStatusFresh
	}

	today := now.Truncate(24 * time.Hour)
	expiry := expirationDate.Truncate(24 * time.Hour)

	if expiry.Before(today) {
		return domain.FoodStatusExpired
	}
	if !expiry.After(today.AddDate(0, 0, windowDays)) {
		return domain.FoodStatusExpiring
	}
	return domain.FoodStatusFresh
}
