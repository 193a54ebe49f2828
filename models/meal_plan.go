package models

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	Base
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	MealType string    `gorm:"not null" json:"meal_type"` // "breakfast" | "lunch" | "dinner" | "snack"
	RecipeID uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	Recipe   *Recipe   `json:"recipe,omitempty"`
	Servings int       `gorm:"not null" json:"servings"`
	Notes    string    `json:"notes,omitempty"`
}
