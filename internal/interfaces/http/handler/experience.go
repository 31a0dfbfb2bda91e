package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// ExperienceHandler handles the experience section endpoints
type ExperienceHandler struct {
	BaseHandler
	experienceService *contentapp.ExperienceService
	authRequired      gin.HandlerFunc
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(experienceService *contentapp.ExperienceService, authRequired gin.HandlerFunc) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService, authRequired: authRequired}
}

// RegisterRoutes registers experience routes. Reads are public, writes
// require authentication.
func (h *ExperienceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/experience", h.List)

	protected := rg.Group("/experience", h.authRequired)
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// List returns all experience entries
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, experiences)
}

// Create creates a new experience entry
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req dto.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	experience, err := h.experienceService.Create(c.Request.Context(), experienceInput(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, experience)
}

// Update updates an experience entry
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	experience, err := h.experienceService.Update(c.Request.Context(), id, experienceInput(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, experience)
}

// Delete removes an experience entry
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.experienceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func experienceInput(req dto.ExperienceRequest) contentapp.ExperienceInput {
	return contentapp.ExperienceInput{
		Role:      req.Role,
		Company:   req.Company,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Points:    req.Points,
	}
}
