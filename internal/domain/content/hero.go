package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// Hero is the landing section of the site. At most one record exists;
// writes go through an upsert.
type Hero struct {
	shared.BaseEntity
	Name         string `json:"name" gorm:"type:varchar(100);not null"`
	Role         string `json:"role" gorm:"type:varchar(100);not null"`
	Headline     string `json:"headline" gorm:"type:text;not null"`
	ProfileImage string `json:"profileImage" gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Hero) TableName() string {
	return "hero"
}

// NewHero creates the hero section content
func NewHero(name, role, headline string) (*Hero, error) {
	if err := validateHeroFields(name, role, headline); err != nil {
		return nil, err
	}

	return &Hero{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Role:       strings.TrimSpace(role),
		Headline:   strings.TrimSpace(headline),
	}, nil
}

// Update replaces the textual fields. The profile image is managed
// separately so an update without a new file keeps the existing one.
func (h *Hero) Update(name, role, headline string) error {
	if err := validateHeroFields(name, role, headline); err != nil {
		return err
	}

	h.Name = strings.TrimSpace(name)
	h.Role = strings.TrimSpace(role)
	h.Headline = strings.TrimSpace(headline)
	h.UpdatedAt = time.Now()

	return nil
}

// SetProfileImage records the stored filename of the profile image
func (h *Hero) SetProfileImage(filename string) {
	h.ProfileImage = filename
	h.UpdatedAt = time.Now()
}

func validateHeroFields(name, role, headline string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError("Name is required")
	}
	if strings.TrimSpace(role) == "" {
		return shared.NewValidationError("Role is required")
	}
	if strings.TrimSpace(headline) == "" {
		return shared.NewValidationError("Headline is required")
	}
	return nil
}
