package services

import (
	"backend/config"
	"backend/models"

	"github.com/google/uuid"
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func ListReviews(userID, recipeID uuid.UUID) ([]models.Review, error) {
	if _, err := GetRecipe(userID, recipeID); err != nil {
		return nil, err
	}
	var reviews []models.Review
	err := config.DB.
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func AddReview(userID, recipeID uuid.UUID, input ReviewInput) (*models.Review, error) {
	if _, err := GetRecipe(userID, recipeID); err != nil {
		return nil, err
	}
	review := &models.Review{
		UserID:   userID,
		RecipeID: recipeID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}
	if err := config.DB.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func DeleteReview(userID, recipeID, reviewID uuid.UUID) error {
	var review models.Review
	if err := config.DB.
		Where("id = ? AND recipe_id = ? AND user_id = ?", reviewID, recipeID, userID).
		First(&review).Error; err != nil {
		return err
	}
	return config.DB.Delete(&review).Error
}
