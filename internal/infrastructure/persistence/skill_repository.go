package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSkillRepository implements SkillRepository using GORM
type GormSkillRepository struct {
	db *gorm.DB
}

// NewGormSkillRepository creates a new GormSkillRepository
func NewGormSkillRepository(db *gorm.DB) *GormSkillRepository {
	return &GormSkillRepository{db: db}
}

// FindAll returns all skills, most recently created first
func (r *GormSkillRepository) FindAll(ctx context.Context) ([]content.Skill, error) {
	var skills []content.Skill
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// FindByID finds a skill by its ID
func (r *GormSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Skill, error) {
	var skill content.Skill
	if err := r.db.WithContext(ctx).First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &skill, nil
}

// Save creates or updates a skill
func (r *GormSkillRepository) Save(ctx context.Context, skill *content.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

// Delete deletes a skill
func (r *GormSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
