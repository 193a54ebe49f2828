package services

import (
	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoverageEpsilon filters out zero/near-zero lines caused by
// floating-point error when on-hand stock almost exactly covers a need.
const CoverageEpsilon = 0.01

type ShoppingLine struct {
	IngredientName string     `json:"ingredient_name"`
	NeededQuantity float64    `json:"needed_quantity"`
	Unit           string     `json:"unit"`
	StoreID        *uuid.UUID `json:"store_id,omitempty"`
}

// SynthesizeShoppingList computes the net purchase need for preparing
// the recipe at requestedServings against the given inventory.
//
// Duplicate normalized names within the recipe accumulate into the
// first-seen unit; when a duplicate's unit cannot be converted the
// accumulator resets to that entry's raw quantity and unit. On-hand
// stock is subtracted after accumulation, and a line is emitted only
// when more than CoverageEpsilon is still needed. An inventory item's
// preferred store is carried onto its line.
func SynthesizeShoppingList(recipe *models.Recipe, requestedServings int, inventory []models.InventoryItem) []ShoppingLine {
	type accum struct {
		quantity float64
		unit     string
	}
	needs := map[string]*accum{}
	order := []string{}

	scaled := ScaleIngredients(recipe.Ingredients, requestedServings, recipe.DefaultServings)
	for i, ing := range recipe.Ingredients {
		if ing.Optional {
			continue
		}
		qty := scaled[i].Quantity

		a, seen := needs[ing.NormalizedName]
		if !seen {
			needs[ing.NormalizedName] = &accum{quantity: qty, unit: ing.Unit}
			order = append(order, ing.NormalizedName)
			continue
		}
		if converted, ok := utils.Convert(qty, ing.Unit, a.unit); ok {
			a.quantity += converted
		} else {
			a.quantity = qty
			a.unit = ing.Unit
		}
	}

	onHand := inventoryByName(inventory)
	lines := []ShoppingLine{}
	for _, name := range order {
		a := needs[name]
		remaining := a.quantity
		var storeID *uuid.UUID

		if item, ok := onHand[name]; ok {
			storeID = item.PreferredStoreID
			if available, ok := utils.Convert(item.Quantity, item.Unit, a.unit); ok {
				remaining -= available
			}
		}

		if remaining > CoverageEpsilon {
			lines = append(lines, ShoppingLine{
				IngredientName: name,
				NeededQuantity: remaining,
				Unit:           a.unit,
				StoreID:        storeID,
			})
		}
	}
	return lines
}

// GenerateShoppingList synthesizes and persists a list for the recipe.
// Returns (nil, nil) when inventory already covers everything; no list
// row is created in that case.
func GenerateShoppingList(userID, recipeID uuid.UUID, requestedServings int, name string) (*models.ShoppingList, error) {
	recipe, err := GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}
	inventory, err := ListInventory(userID)
	if err != nil {
		return nil, err
	}

	lines := SynthesizeShoppingList(recipe, requestedServings, inventory)
	if len(lines) == 0 {
		return nil, nil
	}

	if name == "" {
		name = "Shopping for " + recipe.Name
	}
	list := &models.ShoppingList{UserID: userID, Name: name, Status: models.ListActive}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		items := make([]models.ShoppingListItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, models.ShoppingListItem{
				ShoppingListID: list.ID,
				IngredientName: l.IngredientName,
				NeededQuantity: l.NeededQuantity,
				Unit:           l.Unit,
				StoreID:        l.StoreID,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return GetShoppingList(userID, list.ID)
}

func ListShoppingLists(userID uuid.UUID, status string) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	q := config.DB.Preload("Items").Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&lists).Error
	return lists, err
}

func GetShoppingList(userID, listID uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := config.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func CreateShoppingList(userID uuid.UUID, name string) (*models.ShoppingList, error) {
	var count int64
	config.DB.Model(&models.ShoppingList{}).
		Where("user_id = ? AND name = ? AND status <> ?", userID, name, models.ListArchived).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}
	list := &models.ShoppingList{UserID: userID, Name: name, Status: models.ListActive}
	if err := config.DB.Create(list).Error; err != nil {
		return nil, err
	}
	list.Items = []models.ShoppingListItem{}
	return list, nil
}

func RenameShoppingList(userID, listID uuid.UUID, name string) (*models.ShoppingList, error) {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return nil, err
	}
	list.Name = name
	if err := config.DB.Save(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func DeleteShoppingList(userID, listID uuid.UUID) error {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", list.ID).
			Delete(&models.ShoppingListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(list).Error
	})
}

type ShoppingItemInput struct {
	IngredientName string     `json:"ingredient_name" binding:"required"`
	NeededQuantity float64    `json:"needed_quantity" binding:"gt=0"`
	Unit           string     `json:"unit" binding:"required"`
	StoreID        *uuid.UUID `json:"store_id"`
}

func AddShoppingItem(userID, listID uuid.UUID, input ShoppingItemInput) (*models.ShoppingListItem, error) {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return nil, err
	}
	item := &models.ShoppingListItem{
		ShoppingListID: list.ID,
		IngredientName: utils.NormalizeIngredientName(input.IngredientName),
		NeededQuantity: input.NeededQuantity,
		Unit:           input.Unit,
		StoreID:        input.StoreID,
	}
	if err := config.DB.Create(item).Error; err != nil {
		return nil, err
	}
	if err := refreshListStatus(config.DB, list); err != nil {
		return nil, err
	}
	return item, nil
}

// ShoppingItemUpdate is a partial update; nil fields are untouched.
type ShoppingItemUpdate struct {
	IngredientName *string    `json:"ingredient_name"`
	NeededQuantity *float64   `json:"needed_quantity"`
	Unit           *string    `json:"unit"`
	Purchased      *bool      `json:"purchased"`
	StoreID        *uuid.UUID `json:"store_id"`
}

func UpdateShoppingItem(userID, listID, itemID uuid.UUID, update ShoppingItemUpdate) (*models.ShoppingListItem, error) {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return nil, err
	}
	var item models.ShoppingListItem
	if err := config.DB.
		Where("id = ? AND shopping_list_id = ?", itemID, list.ID).
		First(&item).Error; err != nil {
		return nil, err
	}

	if update.IngredientName != nil {
		item.IngredientName = utils.NormalizeIngredientName(*update.IngredientName)
	}
	if update.NeededQuantity != nil {
		item.NeededQuantity = *update.NeededQuantity
	}
	if update.Unit != nil {
		item.Unit = *update.Unit
	}
	if update.Purchased != nil {
		item.Purchased = *update.Purchased
	}
	if update.StoreID != nil {
		item.StoreID = update.StoreID
	}

	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	if err := refreshListStatus(config.DB, list); err != nil {
		return nil, err
	}
	return &item, nil
}

func DeleteShoppingItem(userID, listID, itemID uuid.UUID) error {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return err
	}
	result := config.DB.
		Where("id = ? AND shopping_list_id = ?", itemID, list.ID).
		Delete(&models.ShoppingListItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return refreshListStatus(config.DB, list)
}

type ItemOutcome struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error,omitempty"`
}

type BulkItemUpdate struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	Purchased bool      `json:"purchased"`
}

// BulkUpdateShoppingItems toggles the purchased flag on several items
// at once, reporting per-item outcomes.
func BulkUpdateShoppingItems(userID, listID uuid.UUID, updates []BulkItemUpdate) ([]ItemOutcome, []ItemOutcome, error) {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return nil, nil, err
	}

	updated := []ItemOutcome{}
	failed := []ItemOutcome{}
	for _, u := range updates {
		result := config.DB.Model(&models.ShoppingListItem{}).
			Where("id = ? AND shopping_list_id = ?", u.ID, list.ID).
			Update("purchased", u.Purchased)
		if result.Error != nil {
			failed = append(failed, ItemOutcome{ID: u.ID, Error: result.Error.Error()})
			continue
		}
		if result.RowsAffected == 0 {
			failed = append(failed, ItemOutcome{ID: u.ID, Error: "item not found"})
			continue
		}
		updated = append(updated, ItemOutcome{ID: u.ID})
	}

	if err := refreshListStatus(config.DB, list); err != nil {
		return nil, nil, err
	}
	return updated, failed, nil
}

func ArchiveShoppingList(userID, listID uuid.UUID) (*models.ShoppingList, error) {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return nil, err
	}
	list.Status = models.ListArchived
	if err := config.DB.Save(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UnarchiveShoppingList moves a list back to active, or straight to
// completed when every item is already purchased.
func UnarchiveShoppingList(userID, listID uuid.UUID) (*models.ShoppingList, error) {
	list, err := GetShoppingList(userID, listID)
	if err != nil {
		return nil, err
	}
	list.Status = models.ListActive
	if err := config.DB.Save(list).Error; err != nil {
		return nil, err
	}
	if err := refreshListStatus(config.DB, list); err != nil {
		return nil, err
	}
	return GetShoppingList(userID, listID)
}

// refreshListStatus flips active <-> completed according to whether all
// items are purchased. Archived lists are left alone.
func refreshListStatus(db *gorm.DB, list *models.ShoppingList) error {
	if list.Status == models.ListArchived {
		return nil
	}
	var total, unpurchased int64
	if err := db.Model(&models.ShoppingListItem{}).
		Where("shopping_list_id = ?", list.ID).
		Count(&total).Error; err != nil {
		return err
	}
	if err := db.Model(&models.ShoppingListItem{}).
		Where("shopping_list_id = ? AND purchased = ?", list.ID, false).
		Count(&unpurchased).Error; err != nil {
		return err
	}

	status := models.ListActive
	if total > 0 && unpurchased == 0 {
		status = models.ListCompleted
	}
	if status == list.Status {
		return nil
	}
	list.Status = status
	return db.Model(&models.ShoppingList{}).
		Where("id = ?", list.ID).
		Update("status", status).Error
}
