package persistence

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormHeroRepository implements HeroRepository using GORM
type GormHeroRepository struct {
	db *gorm.DB
}

// NewGormHeroRepository creates a new GormHeroRepository
func NewGormHeroRepository(db *gorm.DB) *GormHeroRepository {
	return &GormHeroRepository{db: db}
}

// Get returns the hero record
func (r *GormHeroRepository) Get(ctx context.Context) (*content.Hero, error) {
	var hero content.Hero
	if err := r.db.WithContext(ctx).First(&hero).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &hero, nil
}

// Upsert creates or replaces the single hero record. An existing row
// keeps its identity so repeated writes never grow the table.
func (r *GormHeroRepository) Upsert(ctx context.Context, hero *content.Hero) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing content.Hero
		err := tx.First(&existing).Error
		if err == nil {
			hero.ID = existing.ID
			hero.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Save(hero).Error
	})
}
