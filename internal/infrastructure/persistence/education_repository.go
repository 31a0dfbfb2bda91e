package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEducationRepository implements EducationRepository using GORM
type GormEducationRepository struct {
	db *gorm.DB
}

// NewGormEducationRepository creates a new GormEducationRepository
func NewGormEducationRepository(db *gorm.DB) *GormEducationRepository {
	return &GormEducationRepository{db: db}
}

// FindAll returns all education entries, latest start year first
func (r *GormEducationRepository) FindAll(ctx context.Context) ([]content.Education, error) {
	var entries []content.Education
	if err := r.db.WithContext(ctx).
		Order("start_year DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByID finds an education entry by its ID
func (r *GormEducationRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Education, error) {
	var education content.Education
	if err := r.db.WithContext(ctx).First(&education, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &education, nil
}

// Save creates or updates an education entry
func (r *GormEducationRepository) Save(ctx context.Context, education *content.Education) error {
	return r.db.WithContext(ctx).Save(education).Error
}

// Delete deletes an education entry
func (r *GormEducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Education{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
