package models

import "github.com/google/uuid"

const (
	ListActive    = "active"
	ListCompleted = "completed"
	ListArchived  = "archived"
)

type ShoppingList struct {
	Base
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name   string    `gorm:"not null" json:"name"`
	Status string    `gorm:"default:active" json:"status"` // active | completed | archived

	Items []ShoppingListItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

type ShoppingListItem struct {
	Base
	ShoppingListID uuid.UUID  `gorm:"type:uuid;index;not null" json:"shopping_list_id"`
	IngredientName string     `gorm:"not null" json:"ingredient_name"` // normalized
	NeededQuantity float64    `gorm:"not null" json:"needed_quantity"`
	Unit           string     `gorm:"not null" json:"unit"`
	Purchased      bool       `json:"purchased"`
	StoreID        *uuid.UUID `gorm:"type:uuid" json:"store_id,omitempty"`
}
