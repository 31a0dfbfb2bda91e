package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"go.uber.org/zap"
)

// CertificationInput contains input for creating or updating a certification
type CertificationInput struct {
	Title  string
	Issuer string
	Year   string
}

// CertificationService handles the certifications section
type CertificationService struct {
	repo   content.CertificationRepository
	logger *zap.Logger
}

// NewCertificationService creates a new CertificationService
func NewCertificationService(repo content.CertificationRepository, logger *zap.Logger) *CertificationService {
	return &CertificationService{repo: repo, logger: logger}
}

// List returns all certifications, latest year first
func (s *CertificationService) List(ctx context.Context) ([]content.Certification, error) {
	return s.repo.FindAll(ctx)
}

// Create creates a new certification
func (s *CertificationService) Create(ctx context.Context, input CertificationInput) (*content.Certification, error) {
	certification, err := content.NewCertification(input.Title, input.Issuer, input.Year)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, certification); err != nil {
		return nil, err
	}

	s.logger.Info("Certification created",
		zap.String("certification_id", certification.ID.String()),
		zap.String("title", certification.Title))
	return certification, nil
}

// Update replaces all fields of a certification. The record identity is
// always the path id; any id carried in the body is ignored.
func (s *CertificationService) Update(ctx context.Context, id uuid.UUID, input CertificationInput) (*content.Certification, error) {
	certification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := certification.Update(input.Title, input.Issuer, input.Year); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, certification); err != nil {
		return nil, err
	}

	s.logger.Info("Certification updated", zap.String("certification_id", certification.ID.String()))
	return certification, nil
}

// Delete removes a certification
func (s *CertificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Certification deleted", zap.String("certification_id", id.String()))
	return nil
}
