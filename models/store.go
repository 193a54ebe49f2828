package models

import "github.com/google/uuid"

type Store struct {
	Base
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}
