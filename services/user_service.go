package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
)

func GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

func UpdateProfile(userID uuid.UUID, update ProfileUpdate) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		var count int64
		config.DB.Model(&models.User{}).
			Where("email = ? AND id <> ?", *update.Email, userID).
			Count(&count)
		if count > 0 {
			return nil, errors.New("email already in use")
		}
		user.Email = *update.Email
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func ChangePassword(userID uuid.UUID, current, next string) error {
	user, err := GetUser(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return errors.New("current password is incorrect")
	}
	hashed, err := utils.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(user).Error
}
