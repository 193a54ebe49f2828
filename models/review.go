package models

import "github.com/google/uuid"

type Review struct {
	Base
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Rating   int       `gorm:"not null" json:"rating"` // 1..5
	Comment  string    `json:"comment,omitempty"`
}
