package models

import "github.com/google/uuid"

type Recipe struct {
	Base
	UserID          uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name            string    `gorm:"not null" json:"name"`
	DefaultServings int       `gorm:"not null" json:"default_servings"`
	Instructions    string    `json:"instructions"`
	SourceURL       string    `json:"source_url,omitempty"`
	PrepMinutes     int       `json:"prep_minutes,omitempty"`
	CookMinutes     int       `json:"cook_minutes,omitempty"`
	Tags            string    `json:"tags,omitempty"` // comma-separated
	ImageURL        string    `json:"image_url,omitempty"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

// RecipeIngredient keeps both the display name and its normalized form;
// the normalized form is the join key against inventory and shopping lists.
type RecipeIngredient struct {
	Base
	RecipeID       uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Name           string    `gorm:"not null" json:"name"`
	NormalizedName string    `gorm:"index;not null" json:"normalized_name"`
	Quantity       float64   `gorm:"not null" json:"quantity"`
	Unit           string    `gorm:"not null" json:"unit"`
	Optional       bool      `json:"optional"`
	Position       int       `json:"position"`
}
