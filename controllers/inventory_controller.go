package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListInventory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	items, err := services.ListInventory(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetInventoryItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	item, err := services.GetInventoryItem(userID, itemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateInventoryItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input services.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := services.CreateInventoryItem(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateInventoryItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var update services.InventoryItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := services.UpdateInventoryItem(userID, itemID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteInventoryItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteInventoryItem(userID, itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

func BatchDeleteInventory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input struct {
		IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, services.BatchDeleteInventory(userID, input.IDs))
}

func EmptyInventory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	deleted, err := services.EmptyInventory(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func ListLowStock(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	items, err := services.ListLowStock(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func ListExpiring(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	items, err := services.ListExpiring(userID, days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
