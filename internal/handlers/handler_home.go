package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports the API identity, mostly for smoke checks.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Shop Backend API v1"})
}
