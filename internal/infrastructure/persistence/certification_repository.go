package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCertificationRepository implements CertificationRepository using GORM
type GormCertificationRepository struct {
	db *gorm.DB
}

// NewGormCertificationRepository creates a new GormCertificationRepository
func NewGormCertificationRepository(db *gorm.DB) *GormCertificationRepository {
	return &GormCertificationRepository{db: db}
}

// FindAll returns all certifications, latest year first
func (r *GormCertificationRepository) FindAll(ctx context.Context) ([]content.Certification, error) {
	var certifications []content.Certification
	if err := r.db.WithContext(ctx).
		Order("year DESC").
		Find(&certifications).Error; err != nil {
		return nil, err
	}
	return certifications, nil
}

// FindByID finds a certification by its ID
func (r *GormCertificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Certification, error) {
	var certification content.Certification
	if err := r.db.WithContext(ctx).First(&certification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &certification, nil
}

// Save creates or updates a certification
func (r *GormCertificationRepository) Save(ctx context.Context, certification *content.Certification) error {
	return r.db.WithContext(ctx).Save(certification).Error
}

// Delete deletes a certification
func (r *GormCertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Certification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
