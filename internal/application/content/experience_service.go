package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"go.uber.org/zap"
)

// ExperienceInput contains input for creating or updating an experience
type ExperienceInput struct {
	Role      string
	Company   string
	Location  string
	StartDate string
	EndDate   string
	Points    []string
}

// ExperienceService handles the experience section
type ExperienceService struct {
	repo   content.ExperienceRepository
	logger *zap.Logger
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(repo content.ExperienceRepository, logger *zap.Logger) *ExperienceService {
	return &ExperienceService{repo: repo, logger: logger}
}

// List returns all experiences, most recently created first
func (s *ExperienceService) List(ctx context.Context) ([]content.Experience, error) {
	return s.repo.FindAll(ctx)
}

// Create creates a new experience entry
func (s *ExperienceService) Create(ctx context.Context, input ExperienceInput) (*content.Experience, error) {
	experience, err := content.NewExperience(input.Role, input.Company, input.Location, input.StartDate, input.EndDate, input.Points)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, experience); err != nil {
		return nil, err
	}

	s.logger.Info("Experience created",
		zap.String("experience_id", experience.ID.String()),
		zap.String("company", experience.Company))
	return experience, nil
}

// Update replaces all fields of an experience entry
func (s *ExperienceService) Update(ctx context.Context, id uuid.UUID, input ExperienceInput) (*content.Experience, error) {
	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := experience.Update(input.Role, input.Company, input.Location, input.StartDate, input.EndDate, input.Points); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, experience); err != nil {
		return nil, err
	}

	s.logger.Info("Experience updated", zap.String("experience_id", experience.ID.String()))
	return experience, nil
}

// Delete removes an experience entry
func (s *ExperienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Experience deleted", zap.String("experience_id", id.String()))
	return nil
}
