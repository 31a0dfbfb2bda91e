package persistence

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFooterRepository implements FooterRepository using GORM
type GormFooterRepository struct {
	db *gorm.DB
}

// NewGormFooterRepository creates a new GormFooterRepository
func NewGormFooterRepository(db *gorm.DB) *GormFooterRepository {
	return &GormFooterRepository{db: db}
}

// Get returns the footer record
func (r *GormFooterRepository) Get(ctx context.Context) (*content.Footer, error) {
	var footer content.Footer
	if err := r.db.WithContext(ctx).First(&footer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &footer, nil
}

// Upsert creates or replaces the single footer record
func (r *GormFooterRepository) Upsert(ctx context.Context, footer *content.Footer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing content.Footer
		err := tx.First(&existing).Error
		if err == nil {
			footer.ID = existing.ID
			footer.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Save(footer).Error
	})
}
