package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// EducationHandler handles the education section endpoints
type EducationHandler struct {
	BaseHandler
	educationService *contentapp.EducationService
	authRequired     gin.HandlerFunc
}

// NewEducationHandler creates a new EducationHandler
func NewEducationHandler(educationService *contentapp.EducationService, authRequired gin.HandlerFunc) *EducationHandler {
	return &EducationHandler{educationService: educationService, authRequired: authRequired}
}

// RegisterRoutes registers education routes. Reads are public, writes
// require authentication.
func (h *EducationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/education", h.List)

	protected := rg.Group("/education", h.authRequired)
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// List returns all education entries
func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.educationService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entries)
}

// Create creates a new education entry
func (h *EducationHandler) Create(c *gin.Context) {
	var req dto.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entry, err := h.educationService.Create(c.Request.Context(), educationInput(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entry)
}

// Update updates an education entry
func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entry, err := h.educationService.Update(c.Request.Context(), id, educationInput(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entry)
}

// Delete removes an education entry
func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.educationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func educationInput(req dto.EducationRequest) contentapp.EducationInput {
	return contentapp.EducationInput{
		Degree:    req.Degree,
		Institute: req.Institute,
		Location:  req.Location,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}
}
