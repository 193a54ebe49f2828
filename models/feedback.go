package models

import "github.com/google/uuid"

type Feedback struct {
	Base
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Subject string    `gorm:"not null" json:"subject"`
	Message string    `gorm:"not null" json:"message"`
	Rating  *int      `json:"rating,omitempty"` // optional 1..5
}
