package services

import (
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MissingIngredient struct {
	Name      string  `json:"name"`
	Needed    float64 `json:"needed"`
	Available float64 `json:"available"`
	Unit      string  `json:"unit"`
}

type ValidationResult struct {
	CanPrepare bool                `json:"canPrepare"`
	Missing    []MissingIngredient `json:"missing"`
	Warnings   []string            `json:"warnings"`
}

// inventoryByName indexes items by normalized ingredient name, the join
// key shared with recipes and shopping lists.
func inventoryByName(items []models.InventoryItem) map[string]*models.InventoryItem {
	m := make(map[string]*models.InventoryItem, len(items))
	for i := range items {
		m[items[i].NormalizedName] = &items[i]
	}
	return m
}

// ValidatePreparation checks whether on-hand inventory covers every
// non-optional ingredient of the recipe at the requested serving count.
// Quantities are compared in the recipe's unit; an inventory item whose
// unit cannot be converted counts as unavailable and adds a warning.
// Sufficiency is non-strict: needed == available passes.
func ValidatePreparation(recipe *models.Recipe, requestedServings int, inventory []models.InventoryItem) ValidationResult {
	res := ValidationResult{
		Missing:  []MissingIngredient{},
		Warnings: []string{},
	}
	onHand := inventoryByName(inventory)
	scaled := ScaleIngredients(recipe.Ingredients, requestedServings, recipe.DefaultServings)

	for i, ing := range recipe.Ingredients {
		if ing.Optional {
			continue
		}
		needed := scaled[i].Quantity

		item, ok := onHand[ing.NormalizedName]
		if !ok {
			res.Missing = append(res.Missing, MissingIngredient{
				Name: ing.NormalizedName, Needed: needed, Available: 0, Unit: ing.Unit,
			})
			continue
		}

		available, ok := utils.Convert(item.Quantity, item.Unit, ing.Unit)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"%s: cannot convert inventory unit %q to recipe unit %q",
				ing.NormalizedName, item.Unit, ing.Unit))
			available = 0
		}

		if needed > available {
			res.Missing = append(res.Missing, MissingIngredient{
				Name: ing.NormalizedName, Needed: needed, Available: available, Unit: ing.Unit,
			})
		}
	}

	res.CanPrepare = len(res.Missing) == 0
	return res
}

type DeductionEntry struct {
	Name           string  `json:"name"`
	AmountDeducted float64 `json:"amountDeducted"`
	Unit           string  `json:"unit"`
	Remaining      float64 `json:"remaining"`
}

type DeductionResult struct {
	Success  bool             `json:"success"`
	Deducted []DeductionEntry `json:"deducted"`
	Errors   []string         `json:"errors"`
}

// DeductFromInventory computes and applies (in memory) the inventory
// deductions for preparing the recipe at preparedServings. Validation
// runs first; on failure nothing is touched and a single explanatory
// error is returned. Ingredients are processed in recipe-list order,
// amounts are converted into each inventory item's own unit, subtracted
// and clamped at zero. Per-ingredient conversion failures are collected
// into Errors and that ingredient is skipped.
func DeductFromInventory(recipe *models.Recipe, preparedServings int, inventory []models.InventoryItem) DeductionResult {
	res := DeductionResult{
		Deducted: []DeductionEntry{},
		Errors:   []string{},
	}

	if v := ValidatePreparation(recipe, preparedServings, inventory); !v.CanPrepare {
		res.Errors = append(res.Errors, "insufficient inventory to prepare this recipe")
		return res
	}

	onHand := inventoryByName(inventory)
	scaled := ScaleIngredients(recipe.Ingredients, preparedServings, recipe.DefaultServings)

	for i, ing := range recipe.Ingredients {
		if ing.Optional {
			continue
		}
		item, ok := onHand[ing.NormalizedName]
		if !ok {
			// validation guarantees presence; guard anyway
			res.Errors = append(res.Errors, fmt.Sprintf("%s: not found in inventory", ing.NormalizedName))
			continue
		}

		amount, ok := utils.Convert(scaled[i].Quantity, ing.Unit, item.Unit)
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"%s: cannot convert %q to inventory unit %q", ing.NormalizedName, ing.Unit, item.Unit))
			continue
		}

		item.Quantity -= amount
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		res.Deducted = append(res.Deducted, DeductionEntry{
			Name:           ing.NormalizedName,
			AmountDeducted: amount,
			Unit:           item.Unit,
			Remaining:      item.Quantity,
		})
	}

	res.Success = true
	return res
}

// PrepareRecipe validates and deducts against the user's persisted
// inventory. The whole deduction runs in one transaction with the
// touched inventory rows locked, so concurrent preparations cannot
// double-spend a shared ingredient and no partial deduction is ever
// committed.
func PrepareRecipe(userID, recipeID uuid.UUID, preparedServings int) (*DeductionResult, error) {
	recipe, err := GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}

	var result DeductionResult
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var inventory []models.InventoryItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Find(&inventory).Error; err != nil {
			return err
		}

		result = DeductFromInventory(recipe, preparedServings, inventory)
		if !result.Success {
			return nil
		}

		onHand := inventoryByName(inventory)
		for _, d := range result.Deducted {
			item := onHand[d.Name]
			if err := tx.Model(&models.InventoryItem{}).
				Where("id = ?", item.ID).
				Update("quantity", item.Quantity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateRecipePreparation is the read-only variant used by the
// validate endpoint.
func ValidateRecipePreparation(userID, recipeID uuid.UUID, requestedServings int) (*ValidationResult, error) {
	recipe, err := GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}
	var inventory []models.InventoryItem
	if err := config.DB.Where("user_id = ?", userID).Find(&inventory).Error; err != nil {
		return nil, err
	}
	res := ValidatePreparation(recipe, requestedServings, inventory)
	return &res, nil
}
