package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// CertificationHandler handles the certifications section endpoints
type CertificationHandler struct {
	BaseHandler
	certificationService *contentapp.CertificationService
	authRequired         gin.HandlerFunc
}

// NewCertificationHandler creates a new CertificationHandler
func NewCertificationHandler(certificationService *contentapp.CertificationService, authRequired gin.HandlerFunc) *CertificationHandler {
	return &CertificationHandler{certificationService: certificationService, authRequired: authRequired}
}

// RegisterRoutes registers certification routes. Reads are public,
// writes require authentication.
func (h *CertificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/certifications", h.List)

	protected := rg.Group("/certifications", h.authRequired)
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// List returns all certifications
func (h *CertificationHandler) List(c *gin.Context) {
	certifications, err := h.certificationService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, certifications)
}

// Create creates a new certification
func (h *CertificationHandler) Create(c *gin.Context) {
	var req dto.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	certification, err := h.certificationService.Create(c.Request.Context(), certificationInput(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, certification)
}

// Update updates a certification
func (h *CertificationHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	certification, err := h.certificationService.Update(c.Request.Context(), id, certificationInput(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, certification)
}

// Delete removes a certification
func (h *CertificationHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.certificationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func certificationInput(req dto.CertificationRequest) contentapp.CertificationInput {
	return contentapp.CertificationInput{
		Title:  req.Title,
		Issuer: req.Issuer,
		Year:   req.Year,
	}
}
