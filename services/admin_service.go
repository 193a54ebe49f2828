package services

import (
	"backend/config"
	"backend/models"
)

type AdminSummary struct {
	Users         int64 `json:"users"`
	Recipes       int64 `json:"recipes"`
	InventoryRows int64 `json:"inventory_items"`
	ShoppingLists int64 `json:"shopping_lists"`
	MealPlans     int64 `json:"meal_plans"`
	Feedback      int64 `json:"feedback"`
}

func GetAdminSummary() (*AdminSummary, error) {
	var s AdminSummary
	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.User{}, &s.Users},
		{&models.Recipe{}, &s.Recipes},
		{&models.InventoryItem{}, &s.InventoryRows},
		{&models.ShoppingList{}, &s.ShoppingLists},
		{&models.MealPlan{}, &s.MealPlans},
		{&models.Feedback{}, &s.Feedback},
	}
	for _, c := range counts {
		if err := config.DB.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func ListAllUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}
