package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func SubmitFeedback(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input services.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fb, err := services.SubmitFeedback(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}
