package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func CreateRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	recipe, err := services.CreateRecipe(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func ListRecipes(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipes, err := services.ListRecipes(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func GetRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipe, err := services.GetRecipe(userID, recipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func UpdateRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	recipe, err := services.UpdateRecipe(userID, recipeID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteRecipe(userID, recipeID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// ScaleRecipe returns the ingredient list scaled to ?servings=N.
func ScaleRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	servings, err := strconv.Atoi(c.Query("servings"))
	if err != nil || servings <= 0 {
		respondError(c, http.StatusBadRequest, "servings must be a positive integer")
		return
	}

	recipe, err := services.GetRecipe(userID, recipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	scaled := services.ScaleIngredients(recipe.Ingredients, servings, recipe.DefaultServings)
	c.JSON(http.StatusOK, gin.H{
		"recipe_id":        recipe.ID,
		"servings":         servings,
		"default_servings": recipe.DefaultServings,
		"ingredients":      scaled,
	})
}

type ServingsInput struct {
	Servings int `json:"servings" binding:"required,gt=0"`
}

// ValidateRecipe reports whether on-hand inventory covers the recipe.
func ValidateRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input ServingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.ValidateRecipePreparation(userID, recipeID, input.Servings)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PrepareRecipe validates and then deducts the consumed ingredients
// from inventory in a single transaction.
func PrepareRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input ServingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.PrepareRecipe(userID, recipeID, input.Servings)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !result.Success {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
