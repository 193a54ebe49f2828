package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListShoppingLists(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	lists, err := services.ListShoppingLists(userID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func GetShoppingList(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	list, err := services.GetShoppingList(userID, listID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateShoppingList(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := services.CreateShoppingList(userID, input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// GenerateShoppingList runs the synthesizer for one recipe against the
// user's inventory. When everything is covered no list is created.
func GenerateShoppingList(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input struct {
		RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
		Servings int       `json:"servings" binding:"required,gt=0"`
		Name     string    `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := services.GenerateShoppingList(userID, input.RecipeID, input.Servings, input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if list == nil {
		c.JSON(http.StatusOK, gin.H{"message": "inventory already covers this recipe"})
		return
	}
	c.JSON(http.StatusCreated, list)
}

func RenameShoppingList(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := services.RenameShoppingList(userID, listID, input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func DeleteShoppingList(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteShoppingList(userID, listID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "list deleted"})
}

func AddShoppingItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input services.ShoppingItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := services.AddShoppingItem(userID, listID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateShoppingItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}
	var update services.ShoppingItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := services.UpdateShoppingItem(userID, listID, itemID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteShoppingItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	if err := services.DeleteShoppingItem(userID, listID, itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

func BulkUpdateShoppingItems(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Items []services.BulkItemUpdate `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, failed, err := services.BulkUpdateShoppingItems(userID, listID, input.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated, "failed": failed})
}

func ArchiveShoppingList(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	list, err := services.ArchiveShoppingList(userID, listID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func UnarchiveShoppingList(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	list, err := services.UnarchiveShoppingList(userID, listID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
