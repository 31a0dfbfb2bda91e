package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"go.uber.org/zap"
)

// EducationInput contains input for creating or updating an education entry
type EducationInput struct {
	Degree    string
	Institute string
	Location  string
	StartYear string
	EndYear   string
}

// EducationService handles the education section
type EducationService struct {
	repo   content.EducationRepository
	logger *zap.Logger
}

// NewEducationService creates a new EducationService
func NewEducationService(repo content.EducationRepository, logger *zap.Logger) *EducationService {
	return &EducationService{repo: repo, logger: logger}
}

// List returns all education entries, latest start year first
func (s *EducationService) List(ctx context.Context) ([]content.Education, error) {
	return s.repo.FindAll(ctx)
}

// Create creates a new education entry
func (s *EducationService) Create(ctx context.Context, input EducationInput) (*content.Education, error) {
	education, err := content.NewEducation(input.Degree, input.Institute, input.Location, input.StartYear, input.EndYear)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, education); err != nil {
		return nil, err
	}

	s.logger.Info("Education entry created",
		zap.String("education_id", education.ID.String()),
		zap.String("institute", education.Institute))
	return education, nil
}

// Update replaces all fields of an education entry
func (s *EducationService) Update(ctx context.Context, id uuid.UUID, input EducationInput) (*content.Education, error) {
	education, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := education.Update(input.Degree, input.Institute, input.Location, input.StartYear, input.EndYear); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, education); err != nil {
		return nil, err
	}

	s.logger.Info("Education entry updated", zap.String("education_id", education.ID.String()))
	return education, nil
}

// Delete removes an education entry
func (s *EducationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Education entry deleted", zap.String("education_id", id.String()))
	return nil
}
