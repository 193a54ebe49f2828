package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem tracks on-hand quantity for one normalized ingredient name.
// Uniqueness per (user, normalized name) is enforced in the service layer.
type InventoryItem struct {
	Base
	UserID            uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Name              string     `gorm:"not null" json:"name"`
	NormalizedName    string     `gorm:"index;not null" json:"normalized_name"`
	Quantity          float64    `gorm:"not null" json:"quantity"`
	Unit              string     `gorm:"not null" json:"unit"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	LowStockThreshold *float64   `json:"low_stock_threshold,omitempty"`
	StorageLocation   string     `json:"storage_location,omitempty"`
	PreferredStoreID  *uuid.UUID `gorm:"type:uuid" json:"preferred_store_id,omitempty"`
}
