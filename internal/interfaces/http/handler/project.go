package handler

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
)

// ProjectHandler handles the projects section endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *contentapp.ProjectService
	authRequired   gin.HandlerFunc
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *contentapp.ProjectService, authRequired gin.HandlerFunc) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, authRequired: authRequired}
}

// RegisterRoutes registers project routes. Reads are public, writes
// require authentication.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.List)

	protected := rg.Group("/projects", h.authRequired)
	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// List returns all projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, projects)
}

// Create creates a new project
func (h *ProjectHandler) Create(c *gin.Context) {
	input, closeThumbnail, ok := h.bindProjectInput(c)
	if !ok {
		return
	}
	defer closeThumbnail()

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, project)
}

// Update updates a project
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	input, closeThumbnail, ok := h.bindProjectInput(c)
	if !ok {
		return
	}
	defer closeThumbnail()

	project, err := h.projectService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, project)
}

// Delete removes a project
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// bindProjectInput reads the multipart form, decoding the JSON-encoded
// list fields and the optional thumbnail part. On failure it writes an
// error response and reports false.
func (h *ProjectHandler) bindProjectInput(c *gin.Context) (contentapp.ProjectInput, func(), bool) {
	var req dto.ProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindingError(c, err)
		return contentapp.ProjectInput{}, nil, false
	}

	points, err := decodeStringList(req.Points)
	if err != nil {
		h.Error(c, dto.ErrCodeValidation, "points must be a JSON array of strings")
		return contentapp.ProjectInput{}, nil, false
	}

	techStack, err := decodeStringList(req.TechStack)
	if err != nil {
		h.Error(c, dto.ErrCodeValidation, "techStack must be a JSON array of strings")
		return contentapp.ProjectInput{}, nil, false
	}

	thumbnail, closeThumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		h.Error(c, dto.ErrCodeValidation, "Invalid thumbnail upload")
		return contentapp.ProjectInput{}, nil, false
	}

	return contentapp.ProjectInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Points:     points,
		TechStack:  techStack,
		LiveLink:   req.LiveLink,
		GithubLink: req.GithubLink,
		Thumbnail:  thumbnail,
	}, closeThumbnail, true
}

func decodeStringList(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}
