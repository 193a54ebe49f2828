package services

import (
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
)

type InventoryItemInput struct {
	Name              string     `json:"name" binding:"required"`
	Quantity          float64    `json:"quantity" binding:"min=0"`
	Unit              string     `json:"unit" binding:"required"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	LowStockThreshold *float64   `json:"low_stock_threshold"`
	StorageLocation   string     `json:"storage_location"`
	PreferredStoreID  *uuid.UUID `json:"preferred_store_id"`
}

// InventoryItemUpdate models a partial update: nil means "leave as is".
type InventoryItemUpdate struct {
	Name              *string    `json:"name"`
	Quantity          *float64   `json:"quantity"`
	Unit              *string    `json:"unit"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	LowStockThreshold *float64   `json:"low_stock_threshold"`
	StorageLocation   *string    `json:"storage_location"`
	PreferredStoreID  *uuid.UUID `json:"preferred_store_id"`
}

func ListInventory(userID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("normalized_name ASC").
		Find(&items).Error
	return items, err
}

func GetInventoryItem(userID, itemID uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateInventoryItem enforces one item per normalized name per user.
func CreateInventoryItem(userID uuid.UUID, input InventoryItemInput) (*models.InventoryItem, error) {
	normalized := utils.NormalizeIngredientName(input.Name)

	var count int64
	config.DB.Model(&models.InventoryItem{}).
		Where("user_id = ? AND normalized_name = ?", userID, normalized).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	item := &models.InventoryItem{
		UserID:            userID,
		Name:              input.Name,
		NormalizedName:    normalized,
		Quantity:          input.Quantity,
		Unit:              input.Unit,
		ExpiryDate:        input.ExpiryDate,
		LowStockThreshold: input.LowStockThreshold,
		StorageLocation:   input.StorageLocation,
		PreferredStoreID:  input.PreferredStoreID,
	}
	if err := config.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func UpdateInventoryItem(userID, itemID uuid.UUID, update InventoryItemUpdate) (*models.InventoryItem, error) {
	item, err := GetInventoryItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		normalized := utils.NormalizeIngredientName(*update.Name)
		if normalized != item.NormalizedName {
			var count int64
			config.DB.Model(&models.InventoryItem{}).
				Where("user_id = ? AND normalized_name = ? AND id <> ?", userID, normalized, itemID).
				Count(&count)
			if count > 0 {
				return nil, ErrDuplicateName
			}
		}
		item.Name = *update.Name
		item.NormalizedName = normalized
	}
	if update.Quantity != nil {
		item.Quantity = *update.Quantity
	}
	if update.Unit != nil {
		item.Unit = *update.Unit
	}
	if update.ExpiryDate != nil {
		item.ExpiryDate = update.ExpiryDate
	}
	if update.LowStockThreshold != nil {
		item.LowStockThreshold = update.LowStockThreshold
	}
	if update.StorageLocation != nil {
		item.StorageLocation = *update.StorageLocation
	}
	if update.PreferredStoreID != nil {
		item.PreferredStoreID = update.PreferredStoreID
	}

	if err := config.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func DeleteInventoryItem(userID, itemID uuid.UUID) error {
	item, err := GetInventoryItem(userID, itemID)
	if err != nil {
		return err
	}
	return config.DB.Delete(item).Error
}

type BatchOutcome struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error,omitempty"`
}

type BatchResult struct {
	Deleted []BatchOutcome `json:"deleted"`
	Failed  []BatchOutcome `json:"failed"`
}

// BatchDeleteInventory deletes each requested item independently and
// reports per-item outcomes rather than failing the whole batch.
func BatchDeleteInventory(userID uuid.UUID, ids []uuid.UUID) BatchResult {
	res := BatchResult{Deleted: []BatchOutcome{}, Failed: []BatchOutcome{}}
	for _, id := range ids {
		if err := DeleteInventoryItem(userID, id); err != nil {
			res.Failed = append(res.Failed, BatchOutcome{ID: id, Error: err.Error()})
			continue
		}
		res.Deleted = append(res.Deleted, BatchOutcome{ID: id})
	}
	return res
}

// EmptyInventory removes every inventory item the user owns.
func EmptyInventory(userID uuid.UUID) (int64, error) {
	result := config.DB.
		Where("user_id = ?", userID).
		Delete(&models.InventoryItem{})
	return result.RowsAffected, result.Error
}

// ListLowStock returns items at or below their low-stock threshold.
func ListLowStock(userID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := config.DB.
		Where("user_id = ? AND low_stock_threshold IS NOT NULL AND quantity <= low_stock_threshold", userID).
		Order("normalized_name ASC").
		Find(&items).Error
	return items, err
}

// ListExpiring returns items whose expiry date falls within the next
// `days` days, soonest first.
func ListExpiring(userID uuid.UUID, days int) ([]models.InventoryItem, error) {
	cutoff := time.Now().AddDate(0, 0, days)
	var items []models.InventoryItem
	err := config.DB.
		Where("user_id = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", userID, cutoff).
		Order("expiry_date ASC").
		Find(&items).Error
	return items, err
}
