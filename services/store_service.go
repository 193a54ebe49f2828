package services

import (
	"backend/config"
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func ListStores(userID uuid.UUID) ([]models.Store, error) {
	var stores []models.Store
	err := config.DB.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&stores).Error
	return stores, err
}

func CreateStore(userID uuid.UUID, input StoreInput) (*models.Store, error) {
	var count int64
	config.DB.Model(&models.Store{}).
		Where("user_id = ? AND name = ?", userID, input.Name).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	store := &models.Store{
		UserID:  userID,
		Name:    input.Name,
		Address: input.Address,
		Notes:   input.Notes,
	}
	if err := config.DB.Create(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}

func UpdateStore(userID, storeID uuid.UUID, input StoreInput) (*models.Store, error) {
	var store models.Store
	if err := config.DB.
		Where("id = ? AND user_id = ?", storeID, userID).
		First(&store).Error; err != nil {
		return nil, err
	}

	var count int64
	config.DB.Model(&models.Store{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, input.Name, storeID).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateName
	}

	store.Name = input.Name
	store.Address = input.Address
	store.Notes = input.Notes
	if err := config.DB.Save(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// DeleteStore also clears the store from any inventory items and
// shopping list items referencing it.
func DeleteStore(userID, storeID uuid.UUID) error {
	var store models.Store
	if err := config.DB.
		Where("id = ? AND user_id = ?", storeID, userID).
		First(&store).Error; err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.InventoryItem{}).
			Where("preferred_store_id = ?", store.ID).
			Update("preferred_store_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ShoppingListItem{}).
			Where("store_id = ?", store.ID).
			Update("store_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&store).Error
	})
}
