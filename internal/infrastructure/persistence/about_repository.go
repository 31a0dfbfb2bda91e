package persistence

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAboutRepository implements AboutRepository using GORM
type GormAboutRepository struct {
	db *gorm.DB
}

// NewGormAboutRepository creates a new GormAboutRepository
func NewGormAboutRepository(db *gorm.DB) *GormAboutRepository {
	return &GormAboutRepository{db: db}
}

// Get returns the about record
func (r *GormAboutRepository) Get(ctx context.Context) (*content.About, error) {
	var about content.About
	if err := r.db.WithContext(ctx).First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &about, nil
}

// Upsert creates or replaces the single about record
func (r *GormAboutRepository) Upsert(ctx context.Context, about *content.About) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing content.About
		err := tx.First(&existing).Error
		if err == nil {
			about.ID = existing.ID
			about.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Save(about).Error
	})
}
