package services

import (
	"backend/config"
	"backend/models"

	"github.com/google/uuid"
)

type FeedbackInput struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

func SubmitFeedback(userID uuid.UUID, input FeedbackInput) (*models.Feedback, error) {
	fb := &models.Feedback{
		UserID:  userID,
		Subject: input.Subject,
		Message: input.Message,
		Rating:  input.Rating,
	}
	if err := config.DB.Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

func ListAllFeedback() ([]models.Feedback, error) {
	var fbs []models.Feedback
	err := config.DB.Order("created_at DESC").Find(&fbs).Error
	return fbs, err
}
