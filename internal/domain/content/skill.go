package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// SkillCategory groups skills on the public site
type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "Frontend"
	SkillCategoryBackend  SkillCategory = "Backend"
	SkillCategoryDatabase SkillCategory = "Database"
	SkillCategoryDevOps   SkillCategory = "DevOps"
	SkillCategoryTools    SkillCategory = "Tools"
)

// ValidSkillCategories lists the accepted skill categories
var ValidSkillCategories = []SkillCategory{
	SkillCategoryFrontend,
	SkillCategoryBackend,
	SkillCategoryDatabase,
	SkillCategoryDevOps,
	SkillCategoryTools,
}

// Skill is a single technology entry with an uploaded icon
type Skill struct {
	shared.BaseEntity
	Name     string        `json:"name" gorm:"type:varchar(100);not null"`
	Category SkillCategory `json:"category" gorm:"type:varchar(20);not null"`
	Color    string        `json:"color" gorm:"type:varchar(20);not null"`
	Icon     string        `json:"icon" gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Skill) TableName() string {
	return "skills"
}

// NewSkill creates a new skill. The icon filename is required because
// every skill is rendered with its icon.
func NewSkill(name, category, color, icon string) (*Skill, error) {
	if err := validateSkillFields(name, category, color); err != nil {
		return nil, err
	}
	if strings.TrimSpace(icon) == "" {
		return nil, shared.NewValidationError("Icon is required")
	}

	return &Skill{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Category:   SkillCategory(category),
		Color:      strings.TrimSpace(color),
		Icon:       icon,
	}, nil
}

// Update replaces the textual fields. The icon is managed separately.
func (s *Skill) Update(name, category, color string) error {
	if err := validateSkillFields(name, category, color); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.Category = SkillCategory(category)
	s.Color = strings.TrimSpace(color)
	s.UpdatedAt = time.Now()

	return nil
}

// SetIcon records the stored filename of the icon
func (s *Skill) SetIcon(filename string) {
	s.Icon = filename
	s.UpdatedAt = time.Now()
}

func validateSkillFields(name, category, color string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError("Name is required")
	}
	if strings.TrimSpace(color) == "" {
		return shared.NewValidationError("Color is required")
	}
	if !isValidSkillCategory(category) {
		return shared.NewValidationError("Category must be one of Frontend, Backend, Database, DevOps, Tools")
	}
	return nil
}

func isValidSkillCategory(category string) bool {
	for _, c := range ValidSkillCategories {
		if SkillCategory(category) == c {
			return true
		}
	}
	return false
}
