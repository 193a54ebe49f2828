package services

import (
	"time"

	"backend/config"
	"backend/models"

	"github.com/google/uuid"
)

type MealPlanInput struct {
	Date     time.Time `json:"date" binding:"required"`
	MealType string    `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
	Servings int       `json:"servings" binding:"required,gt=0"`
	Notes    string    `json:"notes"`
}

func CreateMealPlan(userID uuid.UUID, input MealPlanInput) (*models.MealPlan, error) {
	// ensure the recipe belongs to the user
	if _, err := GetRecipe(userID, input.RecipeID); err != nil {
		return nil, err
	}

	plan := &models.MealPlan{
		UserID:   userID,
		Date:     input.Date,
		MealType: input.MealType,
		RecipeID: input.RecipeID,
		Servings: input.Servings,
		Notes:    input.Notes,
	}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return GetMealPlan(userID, plan.ID)
}

func GetMealPlan(userID, planID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.
		Preload("Recipe").
		Preload("Recipe.Ingredients").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func ListMealPlans(userID uuid.UUID, from, to *time.Time) ([]models.MealPlan, error) {
	q := config.DB.
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("date ASC")
	if from != nil && to != nil {
		q = q.Where("date >= ? AND date < ?", *from, *to)
	}
	var plans []models.MealPlan
	err := q.Find(&plans).Error
	return plans, err
}

func UpdateMealPlan(userID, planID uuid.UUID, input MealPlanInput) (*models.MealPlan, error) {
	plan, err := GetMealPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	if _, err := GetRecipe(userID, input.RecipeID); err != nil {
		return nil, err
	}

	plan.Date = input.Date
	plan.MealType = input.MealType
	plan.RecipeID = input.RecipeID
	plan.Servings = input.Servings
	plan.Notes = input.Notes
	plan.Recipe = nil
	if err := config.DB.Save(plan).Error; err != nil {
		return nil, err
	}
	return GetMealPlan(userID, planID)
}

func DeleteMealPlan(userID, planID uuid.UUID) error {
	var plan models.MealPlan
	if err := config.DB.
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error; err != nil {
		return err
	}
	return config.DB.Delete(&plan).Error
}
