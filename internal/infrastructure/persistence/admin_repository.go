package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/portfolio/backend/internal/domain/identity"
	"github.com/portfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAdminRepository implements AdminRepository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// FindByEmail finds the admin by email
func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	var admin identity.Admin
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Get returns the seeded admin record
func (r *GormAdminRepository) Get(ctx context.Context) (*identity.Admin, error) {
	var admin identity.Admin
	if err := r.db.WithContext(ctx).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Save creates or updates the admin record
func (r *GormAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}
