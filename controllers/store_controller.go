package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListStores(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	stores, err := services.ListStores(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func CreateStore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input services.StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	store, err := services.CreateStore(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

func UpdateStore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input services.StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	store, err := services.UpdateStore(userID, storeID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func DeleteStore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteStore(userID, storeID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "store deleted"})
}
