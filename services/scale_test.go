package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func ingredient(name string, qty float64, unit string, optional bool) models.RecipeIngredient {
	return models.RecipeIngredient{
		Name:           name,
		NormalizedName: name,
		Quantity:       qty,
		Unit:           unit,
		Optional:       optional,
	}
}

func TestScaleIngredientsIdentityAtDefaultServings(t *testing.T) {
	ings := []models.RecipeIngredient{
		ingredient("flour", 2, "cup", false),
		ingredient("egg", 3, "piece", false),
	}
	scaled := ScaleIngredients(ings, 4, 4)
	assert.Len(t, scaled, 2)
	assert.Equal(t, 2.0, scaled[0].Quantity)
	assert.Equal(t, 3.0, scaled[1].Quantity)
}

func TestScaleIngredientsUpAndDown(t *testing.T) {
	ings := []models.RecipeIngredient{
		ingredient("flour", 2, "cup", false),
		ingredient("salt", 0.5, "tsp", true),
	}

	up := ScaleIngredients(ings, 8, 4)
	assert.Equal(t, 4.0, up[0].Quantity)
	assert.Equal(t, 1.0, up[1].Quantity)
	assert.True(t, up[1].Optional, "optional flag is carried through")

	down := ScaleIngredients(ings, 2, 4)
	assert.Equal(t, 1.0, down[0].Quantity)
	assert.Equal(t, 0.25, down[1].Quantity)
}

func TestScaleIngredientsPreservesOrderAndUnits(t *testing.T) {
	ings := []models.RecipeIngredient{
		ingredient("milk", 250, "ml", false),
		ingredient("butter", 30, "g", false),
	}
	scaled := ScaleIngredients(ings, 3, 2)
	assert.Equal(t, "milk", scaled[0].Name)
	assert.Equal(t, "ml", scaled[0].Unit)
	assert.Equal(t, "butter", scaled[1].Name)
	assert.InDelta(t, 375.0, scaled[0].Quantity, 1e-9)
	assert.InDelta(t, 45.0, scaled[1].Quantity, 1e-9)
}
