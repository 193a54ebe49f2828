package services

import (
	"testing"

	"backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeAgainstEmptyInventory(t *testing.T) {
	lines := SynthesizeShoppingList(pancakeRecipe(), 4, nil)

	assert.Len(t, lines, 1)
	assert.Equal(t, "flour", lines[0].IngredientName)
	assert.Equal(t, 2.0, lines[0].NeededQuantity)
	assert.Equal(t, "cup", lines[0].Unit)
}

func TestSynthesizeSubtractsOnHand(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 0.5, "cup")}

	lines := SynthesizeShoppingList(pancakeRecipe(), 4, inventory)

	assert.Len(t, lines, 1)
	assert.InDelta(t, 1.5, lines[0].NeededQuantity, 1e-9)
}

func TestSynthesizeFullyCoveredEmitsNothing(t *testing.T) {
	inventory := []models.InventoryItem{stock("flour", 2, "cup")}

	lines := SynthesizeShoppingList(pancakeRecipe(), 4, inventory)
	assert.Empty(t, lines)
}

func TestSynthesizeSuppressesNearZeroRemainders(t *testing.T) {
	// 1.995 on hand leaves 0.005 needed, under the 0.01 epsilon
	inventory := []models.InventoryItem{stock("flour", 1.995, "cup")}

	lines := SynthesizeShoppingList(pancakeRecipe(), 4, inventory)
	assert.Empty(t, lines)
}

func TestSynthesizeNeverEmitsAtOrBelowEpsilon(t *testing.T) {
	for _, onHand := range []float64{0, 0.4, 1.2, 1.99, 2.1} {
		inventory := []models.InventoryItem{stock("flour", onHand, "cup")}
		for _, l := range SynthesizeShoppingList(pancakeRecipe(), 4, inventory) {
			assert.Greater(t, l.NeededQuantity, CoverageEpsilon)
		}
	}
}

func TestSynthesizeSkipsOptionalIngredients(t *testing.T) {
	recipe := pancakeRecipe()
	recipe.Ingredients = append(recipe.Ingredients, ingredient("syrup", 1, "cup", true))

	lines := SynthesizeShoppingList(recipe, 4, nil)

	assert.Len(t, lines, 1)
	assert.Equal(t, "flour", lines[0].IngredientName)
}

func TestSynthesizeAccumulatesDuplicatesInFirstSeenUnit(t *testing.T) {
	recipe := &models.Recipe{
		Name:            "Layered Bake",
		DefaultServings: 2,
		Ingredients: []models.RecipeIngredient{
			ingredient("milk", 1, "cup", false),
			ingredient("milk", 120, "ml", false),
		},
	}

	lines := SynthesizeShoppingList(recipe, 2, nil)

	assert.Len(t, lines, 1)
	assert.Equal(t, "cup", lines[0].Unit, "first-seen unit wins")
	assert.InDelta(t, 1.5072, lines[0].NeededQuantity, 0.001)
}

func TestSynthesizeDuplicateConversionFailureResetsAccumulator(t *testing.T) {
	recipe := &models.Recipe{
		Name:            "Odd Bread",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			ingredient("flour", 2, "cup", false),
			ingredient("flour", 300, "g", false), // weight vs volume: no conversion
		},
	}

	lines := SynthesizeShoppingList(recipe, 1, nil)

	assert.Len(t, lines, 1)
	assert.Equal(t, "g", lines[0].Unit, "accumulator resets to the raw entry on conversion failure")
	assert.Equal(t, 300.0, lines[0].NeededQuantity)
}

func TestSynthesizeCarriesPreferredStore(t *testing.T) {
	storeID := uuid.New()
	item := stock("flour", 0.5, "cup")
	item.PreferredStoreID = &storeID

	lines := SynthesizeShoppingList(pancakeRecipe(), 4, []models.InventoryItem{item})

	assert.Len(t, lines, 1)
	if assert.NotNil(t, lines[0].StoreID) {
		assert.Equal(t, storeID, *lines[0].StoreID)
	}
}

func TestSynthesizeIgnoresUnconvertibleInventory(t *testing.T) {
	// weight stock cannot offset a volume need; full need is emitted
	inventory := []models.InventoryItem{stock("flour", 500, "g")}

	lines := SynthesizeShoppingList(pancakeRecipe(), 4, inventory)

	assert.Len(t, lines, 1)
	assert.Equal(t, 2.0, lines[0].NeededQuantity)
}
