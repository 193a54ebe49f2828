package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func pancakeRecipe() *models.Recipe {
	return &models.Recipe{
		Name:            "Pancakes",
		DefaultServings: 4,
		Ingredients: []models.RecipeIngredient{
			ingredient("flour", 2, "cup", false),
		},
	}
}

func stock(name string, qty float64, unit string) models.InventoryItem {
	return models.InventoryItem{
		Name:           name,
		NormalizedName: name,
		Quantity:       qty,
		Unit:           unit,
	}
}

func TestValidateInsufficientInventory(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 1, "cup")}

	res := ValidatePreparation(pancakeRecipe(), 4, inventory)

	assert.False(t, res.CanPrepare)
	assert.Len(t, res.Missing, 1)
	assert.Equal(t, "flour", res.Missing[0].Name)
	assert.Equal(t, 2.0, res.Missing[0].Needed)
	assert.Equal(t, 1.0, res.Missing[0].Available)
	assert.Equal(t, "cup", res.Missing[0].Unit)
	assert.Empty(t, res.Warnings)
}

func TestValidateScaledDownSucceeds(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 1, "cup")}

	res := ValidatePreparation(pancakeRecipe(), 2, inventory)

	assert.True(t, res.CanPrepare)
	assert.Empty(t, res.Missing)
}

func TestValidateExactQuantityIsSufficient(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 2, "cup")}

	res := ValidatePreparation(pancakeRecipe(), 4, inventory)
	assert.True(t, res.CanPrepare, "needed == available passes (non-strict)")
}

func TestValidateMissingIngredientReportsZeroAvailable(t *testing.T) {
	res := ValidatePreparation(pancakeRecipe(), 4, nil)

	assert.False(t, res.CanPrepare)
	assert.Len(t, res.Missing, 1)
	assert.Equal(t, 0.0, res.Missing[0].Available)
}

func TestValidateIncompatibleUnitWarnsAndCountsAsZero(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 500, "g")}

	res := ValidatePreparation(pancakeRecipe(), 4, inventory)

	assert.False(t, res.CanPrepare)
	assert.Len(t, res.Warnings, 1)
	assert.Len(t, res.Missing, 1)
	assert.Equal(t, 0.0, res.Missing[0].Available)
}

func TestValidateConvertsInventoryUnit(t *testing.T) {
	// 600 ml of flour covers 2 cups (473.2 ml)
	inventory := []models.InventoryItem{stock("flour", 600, "ml")}

	res := ValidatePreparation(pancakeRecipe(), 4, inventory)
	assert.True(t, res.CanPrepare)
}

func TestValidateSkipsOptionalIngredients(t *testing.T) {
	recipe := pancakeRecipe()
	recipe.Ingredients = append(recipe.Ingredients, ingredient("blueberry", 1, "cup", true))
	inventory := []models.InventoryItem{stock("flour", 2, "cup")}

	res := ValidatePreparation(recipe, 4, inventory)

	assert.True(t, res.CanPrepare, "optional ingredients never appear in missing")
}

func TestDeductNoOpWhenValidationFails(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 1, "cup")}

	res := DeductFromInventory(pancakeRecipe(), 4, inventory)

	assert.False(t, res.Success)
	assert.Empty(t, res.Deducted)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, 1.0, inventory[0].Quantity, "inventory untouched on failed validation")
}

func TestDeductSubtractsInInventoryUnit(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 600, "ml")}

	res := DeductFromInventory(pancakeRecipe(), 4, inventory)

	assert.True(t, res.Success)
	assert.Len(t, res.Deducted, 1)
	d := res.Deducted[0]
	assert.Equal(t, "flour", d.Name)
	assert.Equal(t, "ml", d.Unit, "amounts are recorded in the inventory item's unit")
	assert.InDelta(t, 473.176473, d.AmountDeducted, 1e-6)
	assert.InDelta(t, 126.823527, d.Remaining, 1e-6)
	assert.InDelta(t, 126.823527, inventory[0].Quantity, 1e-6)
}

func TestDeductClampsAtZero(t *testing.T) {
	// 2 cups on hand, 2 cups needed: float arithmetic may land a hair
	// under zero, the clamp keeps the stored quantity non-negative
	inventory := []models.InventoryItem{stock("flour", 2, "cup")}

	res := DeductFromInventory(pancakeRecipe(), 4, inventory)

	assert.True(t, res.Success)
	assert.GreaterOrEqual(t, inventory[0].Quantity, 0.0)
	assert.Equal(t, 0.0, res.Deducted[0].Remaining)
}

func TestDeductProcessesInRecipeOrder(t *testing.T) {
	recipe := &models.Recipe{
		Name:            "Omelette",
		DefaultServings: 2,
		Ingredients: []models.RecipeIngredient{
			ingredient("egg", 4, "piece", false),
			ingredient("butter", 20, "g", false),
			ingredient("chive", 1, "tbsp", true),
		},
	}
	inventory := []models.InventoryItem{
		stock("butter", 100, "g"),
		stock("egg", 6, "piece"),
	}

	res := DeductFromInventory(recipe, 2, inventory)

	assert.True(t, res.Success)
	assert.Len(t, res.Deducted, 2, "optional chive is skipped")
	assert.Equal(t, "egg", res.Deducted[0].Name)
	assert.Equal(t, "butter", res.Deducted[1].Name)
	assert.Equal(t, 2.0, res.Deducted[0].Remaining)
	assert.Equal(t, 80.0, res.Deducted[1].Remaining)
}
