package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// SkillHandler handles the skills section endpoints
type SkillHandler struct {
	BaseHandler
	skillService *contentapp.SkillService
	authRequired gin.HandlerFunc
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skillService *contentapp.SkillService, authRequired gin.HandlerFunc) *SkillHandler {
	return &SkillHandler{skillService: skillService, authRequired: authRequired}
}

// RegisterRoutes registers skill routes. Reads are public, writes
// require authentication.
func (h *SkillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.List)

	protected := rg.Group("/skills", h.authRequired)
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// List returns all skills
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, skills)
}

// Create creates a new skill with its icon
func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.SkillRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	icon, closeIcon, err := formFile(c, "icon")
	if err != nil {
		h.Error(c, dto.ErrCodeValidation, "Invalid icon upload")
		return
	}
	defer closeIcon()

	skill, err := h.skillService.Create(c.Request.Context(), contentapp.CreateSkillInput{
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Icon:     icon,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, skill)
}

// Update updates a skill
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.SkillRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	icon, closeIcon, err := formFile(c, "icon")
	if err != nil {
		h.Error(c, dto.ErrCodeValidation, "Invalid icon upload")
		return
	}
	defer closeIcon()

	skill, err := h.skillService.Update(c.Request.Context(), id, contentapp.UpdateSkillInput{
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
		Icon:     icon,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, skill)
}

// Delete removes a skill
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
