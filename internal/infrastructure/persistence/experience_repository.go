package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExperienceRepository implements ExperienceRepository using GORM
type GormExperienceRepository struct {
	db *gorm.DB
}

// NewGormExperienceRepository creates a new GormExperienceRepository
func NewGormExperienceRepository(db *gorm.DB) *GormExperienceRepository {
	return &GormExperienceRepository{db: db}
}

// FindAll returns all experiences, most recently created first
func (r *GormExperienceRepository) FindAll(ctx context.Context) ([]content.Experience, error) {
	var experiences []content.Experience
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// FindByID finds an experience by its ID
func (r *GormExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Experience, error) {
	var experience content.Experience
	if err := r.db.WithContext(ctx).First(&experience, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &experience, nil
}

// Save creates or updates an experience
func (r *GormExperienceRepository) Save(ctx context.Context, experience *content.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

// Delete deletes an experience
func (r *GormExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Experience{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
