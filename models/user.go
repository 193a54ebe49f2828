package models

import "time"

type User struct {
	Base
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `gorm:"not null" json:"-"`
	FullName      string `json:"full_name"`
	Role          string `gorm:"default:user" json:"role"` // "user" | "admin"
	ResetToken    string `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
