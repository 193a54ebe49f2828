package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// respondError emits the structured error body used across the API:
// {"error": {"message": ..., "statusCode": ...}}
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{
		"message":    message,
		"statusCode": status,
	}})
}

// respondServiceError maps common service errors onto status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrDuplicateName):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func userIDFromCtx(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// requireUser pulls the authenticated user's id or aborts with 401.
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := userIDFromCtx(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}

// pathUUID parses a :param path segment as a UUID or responds 400.
func pathUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}
