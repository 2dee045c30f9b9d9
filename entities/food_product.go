package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodProduct struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	ProductName    string     `json:"product_name"`
	Quantity       string     `json:"quantity"`
	Brands         string     `json:"brands"`
	Category       string     `json:"category"`
	ExpirationDate *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`
	AddedDate      time.Time  `gorm:"type:timestamp" json:"added_date"`

	User *User `gorm:"foreignKey:UserID"`
}
