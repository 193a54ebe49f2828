package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func AdminSummary(c *gin.Context) {
	summary, err := services.GetAdminSummary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func AdminListFeedback(c *gin.Context) {
	fbs, err := services.ListAllFeedback()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fbs)
}

func AdminListUsers(c *gin.Context) {
	users, err := services.ListAllUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
