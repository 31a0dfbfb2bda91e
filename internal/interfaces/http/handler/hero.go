package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// HeroHandler handles the hero section endpoints
type HeroHandler struct {
	BaseHandler
	heroService *contentapp.HeroService
}

// NewHeroHandler creates a new HeroHandler
func NewHeroHandler(heroService *contentapp.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

// RegisterRoutes registers hero section routes
func (h *HeroHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hero", h.Get)
	rg.PUT("/hero", h.Upsert)
}

// Get returns the hero section
func (h *HeroHandler) Get(c *gin.Context) {
	hero, err := h.heroService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, hero)
}

// Upsert creates or replaces the hero section
func (h *HeroHandler) Upsert(c *gin.Context) {
	var req dto.HeroRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	image, closeImage, err := formFile(c, "profileImage")
	if err != nil {
		h.Error(c, dto.ErrCodeValidation, "Invalid image upload")
		return
	}
	defer closeImage()

	hero, err := h.heroService.Upsert(c.Request.Context(), contentapp.UpsertHeroInput{
		Name:     req.Name,
		Role:     req.Role,
		Headline: req.Headline,
		Image:    image,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, hero)
}
