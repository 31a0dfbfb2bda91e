package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/infrastructure/persistence"
)

// SystemHandler handles operational endpoints
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports service and database health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	if err := h.db.Ping(); err != nil {
		status = "degraded"
	}
	h.Success(c, gin.H{"status": status})
}
