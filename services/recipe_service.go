package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateName is returned when a resource name collides within the
// owning user's scope; controllers map it to 409.
var ErrDuplicateName = errors.New("a resource with that name already exists")

type IngredientInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"min=0"`
	Unit     string  `json:"unit" binding:"required"`
	Optional bool    `json:"optional"`
}

type RecipeInput struct {
	Name            string            `json:"name" binding:"required"`
	DefaultServings int               `json:"default_servings" binding:"required,gt=0"`
	Instructions    string            `json:"instructions"`
	SourceURL       string            `json:"source_url"`
	PrepMinutes     int               `json:"prep_minutes"`
	CookMinutes     int               `json:"cook_minutes"`
	Tags            string            `json:"tags"`
	ImageURL        string            `json:"image_url"`
	Ingredients     []IngredientInput `json:"ingredients" binding:"required,dive"`
}

func buildIngredients(recipeID uuid.UUID, inputs []IngredientInput) []models.RecipeIngredient {
	out := make([]models.RecipeIngredient, 0, len(inputs))
	for i, in := range inputs {
		out = append(out, models.RecipeIngredient{
			RecipeID:       recipeID,
			Name:           in.Name,
			NormalizedName: utils.NormalizeIngredientName(in.Name),
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			Optional:       in.Optional,
			Position:       i,
		})
	}
	return out
}

func CreateRecipe(userID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	var count int64
	config.DB.Model(&models.Recipe{}).
		Where("user_id = ? AND name = ?", userID, input.Name).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	recipe := &models.Recipe{
		UserID:          userID,
		Name:            input.Name,
		DefaultServings: input.DefaultServings,
		Instructions:    input.Instructions,
		SourceURL:       input.SourceURL,
		PrepMinutes:     input.PrepMinutes,
		CookMinutes:     input.CookMinutes,
		Tags:            input.Tags,
		ImageURL:        input.ImageURL,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		ings := buildIngredients(recipe.ID, input.Ingredients)
		if len(ings) > 0 {
			if err := tx.Create(&ings).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetRecipe(userID, recipe.ID)
}

func ListRecipes(userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := config.DB.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&recipes).Error
	return recipes, err
}

func GetRecipe(userID, recipeID uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe replaces the recipe wholesale, ingredients included.
func UpdateRecipe(userID, recipeID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	recipe, err := GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}

	var count int64
	config.DB.Model(&models.Recipe{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, input.Name, recipeID).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		recipe.Name = input.Name
		recipe.DefaultServings = input.DefaultServings
		recipe.Instructions = input.Instructions
		recipe.SourceURL = input.SourceURL
		recipe.PrepMinutes = input.PrepMinutes
		recipe.CookMinutes = input.CookMinutes
		recipe.Tags = input.Tags
		recipe.ImageURL = input.ImageURL
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		ings := buildIngredients(recipe.ID, input.Ingredients)
		if len(ings) > 0 {
			if err := tx.Create(&ings).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetRecipe(userID, recipeID)
}

func DeleteRecipe(userID, recipeID uuid.UUID) error {
	recipe, err := GetRecipe(userID, recipeID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

type ScaledIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Optional bool    `json:"optional"`
}

// ScaleIngredients multiplies every ingredient quantity by
// requestedServings/defaultServings. defaultServings is constrained
// positive at the API boundary, so no division guard is needed here.
func ScaleIngredients(ings []models.RecipeIngredient, requestedServings, defaultServings int) []ScaledIngredient {
	factor := float64(requestedServings) / float64(defaultServings)
	out := make([]ScaledIngredient, 0, len(ings))
	for _, ing := range ings {
		out = append(out, ScaledIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity * factor,
			Unit:     ing.Unit,
			Optional: ing.Optional,
		})
	}
	return out
}
