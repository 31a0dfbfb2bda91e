package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// AboutHandler handles the about section endpoints
type AboutHandler struct {
	BaseHandler
	aboutService *contentapp.AboutService
}

// NewAboutHandler creates a new AboutHandler
func NewAboutHandler(aboutService *contentapp.AboutService) *AboutHandler {
	return &AboutHandler{aboutService: aboutService}
}

// RegisterRoutes registers about section routes
func (h *AboutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/about", h.Get)
	rg.PUT("/about", h.Upsert)
}

// Get returns the about section
func (h *AboutHandler) Get(c *gin.Context) {
	about, err := h.aboutService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, about)
}

// Upsert creates or replaces the about section
func (h *AboutHandler) Upsert(c *gin.Context) {
	var req dto.AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	about, err := h.aboutService.Upsert(c.Request.Context(), req.Points)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, about)
}
