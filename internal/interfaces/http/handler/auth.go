package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/portfolio/backend/internal/application/identity"
	"github.com/portfolio/backend/internal/interfaces/http/dto"
	"github.com/portfolio/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.POST("/login", h.Login)
	admin.GET("/verify-token", h.VerifyToken)
}

// Login authenticates the admin and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	})
}

// VerifyToken checks the bearer token presented in the request
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	authHeader := c.GetHeader(middleware.AuthHeaderKey)
	tokenString := strings.TrimPrefix(authHeader, middleware.BearerPrefix)
	if authHeader == "" || tokenString == authHeader {
		h.Error(c, dto.ErrCodeUnauthorized, "Missing bearer token")
		return
	}

	claims, err := h.authService.VerifyToken(tokenString)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.VerifyTokenResponse{
		Valid:     true,
		AdminID:   claims.AdminID,
		Email:     claims.Email,
		ExpiresAt: claims.GetExpiresAtTime().Format(time.RFC3339),
	})
}
