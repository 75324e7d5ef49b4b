package controllers

import (
	"net/http"
	"time"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

// Health reports that the gateway is up. It does not touch the database.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
