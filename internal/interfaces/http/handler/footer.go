package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// FooterHandler handles the footer section endpoints
type FooterHandler struct {
	BaseHandler
	footerService *contentapp.FooterService
}

// NewFooterHandler creates a new FooterHandler
func NewFooterHandler(footerService *contentapp.FooterService) *FooterHandler {
	return &FooterHandler{footerService: footerService}
}

// RegisterRoutes registers footer section routes
func (h *FooterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/footer", h.Get)
	rg.POST("/footer", h.Upsert)
	rg.PUT("/footer", h.Upsert)
}

// Get returns the footer section
func (h *FooterHandler) Get(c *gin.Context) {
	footer, err := h.footerService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, footer)
}

// Upsert creates or replaces the footer section
func (h *FooterHandler) Upsert(c *gin.Context) {
	var req dto.FooterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resume, closeResume, err := formFile(c, "resume")
	if err != nil {
		h.Error(c, dto.ErrCodeValidation, "Invalid resume upload")
		return
	}
	defer closeResume()

	footer, err := h.footerService.Upsert(c.Request.Context(), contentapp.UpsertFooterInput{
		Github:   req.Github,
		Linkedin: req.Linkedin,
		Email:    req.Email,
		Resume:   resume,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, footer)
}
