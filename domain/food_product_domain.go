package domain

import (
	"errors"
	"time"
)

const (
	FoodStatusFresh    = "Fresh"
	FoodStatusExpiring = "Expiring"
	FoodStatusExpired  = "Expired"
)

var (
	MessageSuccessAddFoodProduct     = "food product added successfully"
	MessageSuccessGetFoodProducts    = "food products retrieved successfully"
	MessageSuccessDeleteFoodProducts = "food products deleted successfully"

	MessageFailedAddFoodProduct     = "failed to add food product"
	MessageFailedGetFoodProducts    = "failed to retrieve food products"
	MessageFailedDeleteFoodProducts = "failed to delete food products"

	ErrProductFieldsRequired = errors.New("product name and quantity are required")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrProductIDsRequired    = errors.New("at least one product id is required")
	ErrNothingToDelete       = errors.New("no matching food products to delete")
)

type (
	AddFoodProductRequest struct {
		ProductName    string `json:"productName" validate:"required"`
		Quantity       string `json:"quantity" validate:"required"`
		Brands         string `json:"brands"`
		Category       string `json:"category"`
		ExpirationDate string `json:"expirationDate" validate:"omitempty,datetime=2006-01-02"`
	}

	FoodProductResponse struct {
		ID             string    `json:"id"`
		ProductName    string    `json:"productName"`
		Quantity       string    `json:"quantity"`
		Brands         string    `json:"brands"`
		Category       string    `json:"category"`
		ExpirationDate *string   `json:"expirationDate"`
		Status         string    `json:"status"`
		AddedDate      time.Time `json:"addedDate"`
	}

	DeleteFoodProductsRequest struct {
		ProductIDs []string `json:"productIds" validate:"required,min=1,dive,uuid"`
	}

	DeleteFoodProductsResponse struct {
		Deleted int64 `json:"deleted"`
	}
)
