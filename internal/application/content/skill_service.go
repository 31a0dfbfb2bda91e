package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CreateSkillInput contains input for creating a skill
type CreateSkillInput struct {
	Name     string
	Category string
	Color    string
	Icon     *FileUpload // required on create
}

// UpdateSkillInput contains input for updating a skill
type UpdateSkillInput struct {
	Name     string
	Category string
	Color    string
	Icon     *FileUpload // optional; existing icon is kept when absent
}

// SkillService handles the skills section
type SkillService struct {
	repo        content.SkillRepository
	files       fileLifecycle
	imagePolicy UploadPolicy
	logger      *zap.Logger
}

// NewSkillService creates a new SkillService
func NewSkillService(repo content.SkillRepository, store FileStore, imagePolicy UploadPolicy, logger *zap.Logger) *SkillService {
	return &SkillService{
		repo:        repo,
		files:       fileLifecycle{store: store, logger: logger},
		imagePolicy: imagePolicy,
		logger:      logger,
	}
}

// List returns all skills, most recently created first
func (s *SkillService) List(ctx context.Context) ([]content.Skill, error) {
	return s.repo.FindAll(ctx)
}

// Create creates a new skill with its icon
func (s *SkillService) Create(ctx context.Context, input CreateSkillInput) (*content.Skill, error) {
	if input.Icon == nil {
		return nil, shared.NewValidationError("Icon is required")
	}

	stored, err := s.files.stage(ctx, NamespaceSkills, s.imagePolicy, input.Icon)
	if err != nil {
		return nil, err
	}

	skill, err := content.NewSkill(input.Name, input.Category, input.Color, stored)
	if err != nil {
		s.files.release(ctx, NamespaceSkills, stored)
		return nil, err
	}

	if err := s.repo.Save(ctx, skill); err != nil {
		s.files.release(ctx, NamespaceSkills, stored)
		return nil, err
	}

	s.logger.Info("Skill created",
		zap.String("skill_id", skill.ID.String()),
		zap.String("name", skill.Name))
	return skill, nil
}

// Update updates a skill. A new icon replaces and removes the old one.
func (s *SkillService) Update(ctx context.Context, id uuid.UUID, input UpdateSkillInput) (*content.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := skill.Update(input.Name, input.Category, input.Color); err != nil {
		return nil, err
	}

	oldIcon := ""
	if input.Icon != nil {
		stored, err := s.files.stage(ctx, NamespaceSkills, s.imagePolicy, input.Icon)
		if err != nil {
			return nil, err
		}
		oldIcon = skill.Icon
		skill.SetIcon(stored)
	}

	if err := s.repo.Save(ctx, skill); err != nil {
		if input.Icon != nil {
			s.files.release(ctx, NamespaceSkills, skill.Icon)
		}
		return nil, err
	}

	if oldIcon != "" && oldIcon != skill.Icon {
		s.files.release(ctx, NamespaceSkills, oldIcon)
	}

	s.logger.Info("Skill updated", zap.String("skill_id", skill.ID.String()))
	return skill, nil
}

// Delete removes a skill and its stored icon
func (s *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.files.release(ctx, NamespaceSkills, skill.Icon)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Skill deleted", zap.String("skill_id", id.String()))
	return nil
}
