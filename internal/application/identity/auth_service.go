package identity

import (
	"context"
	"time"

	"github.com/portfolio/backend/internal/domain/identity"
	"github.com/portfolio/backend/internal/domain/shared"
	"github.com/portfolio/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// LoginInput contains credentials for the login operation
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the issued token and its expiry
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService handles authentication for the single admin identity
type AuthService struct {
	adminRepo  identity.AdminRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(adminRepo identity.AdminRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates the admin and returns a signed token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", input.Email))
		return nil, shared.ErrInvalidCredentials
	}

	if !admin.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyToken validates a token and returns its claims
func (s *AuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	return claims, nil
}
