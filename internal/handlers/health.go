package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db               *gorm.DB
	aiAvailable      bool
	parasutAvailable bool
}

func NewHealthHandler(db *gorm.DB, aiAvailable, parasutAvailable bool) *HealthHandler {
	return &HealthHandler{db: db, aiAvailable: aiAvailable, parasutAvailable: parasutAvailable}
}

// Root godoc
// @Summary      Service banner
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ExportIQ360 API",
		"status":  "running",
		"docs":    "/swagger/index.html",
	})
}

// Health godoc
// @Summary      Health check
// @Description  Reports database connectivity and which integrations are configured.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	status := http.StatusOK

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   dbStatus,
		"database": dbStatus,
		"integrations": gin.H{
			"ai":      h.aiAvailable,
			"parasut": h.parasutAvailable,
		},
	})
}
