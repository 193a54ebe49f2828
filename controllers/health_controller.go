package controllers

import (
	"net/http"

	"backend/config"
	"backend/logger"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health reports database connectivity without failing the process:
// 200 with "degraded" when the DB is unreachable.
func Health(c *gin.Context) {
	if err := config.PingDB(); err != nil {
		logger.Warn("health check: database unreachable", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "ok"})
}

// RecipeProxy fetches an external page server-side so the frontend can
// import recipes from sites that do not send CORS headers.
func RecipeProxy(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		respondError(c, http.StatusBadRequest, "url query parameter is required")
		return
	}

	body, contentType, status, err := services.FetchExternalRecipe(rawURL)
	if err != nil {
		respondError(c, http.StatusBadGateway, err.Error())
		return
	}
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}
	c.Data(status, contentType, body)
}
