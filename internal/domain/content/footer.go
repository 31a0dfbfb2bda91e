package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// Footer carries the contact links and resume shown at the bottom of
// the site. At most one record exists; writes go through an upsert.
type Footer struct {
	shared.BaseEntity
	Github   string `json:"github" gorm:"type:varchar(500);not null"`
	Linkedin string `json:"linkedin" gorm:"type:varchar(500);not null"`
	Email    string `json:"email" gorm:"type:varchar(255);not null"`
	Resume   string `json:"resume" gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Footer) TableName() string {
	return "footer"
}

// NewFooter creates the footer section content
func NewFooter(github, linkedin, email string) (*Footer, error) {
	if err := validateFooterFields(github, linkedin, email); err != nil {
		return nil, err
	}

	return &Footer{
		BaseEntity: shared.NewBaseEntity(),
		Github:     strings.TrimSpace(github),
		Linkedin:   strings.TrimSpace(linkedin),
		Email:      strings.TrimSpace(email),
	}, nil
}

// Update replaces the link fields. The resume file is managed separately.
func (f *Footer) Update(github, linkedin, email string) error {
	if err := validateFooterFields(github, linkedin, email); err != nil {
		return err
	}

	f.Github = strings.TrimSpace(github)
	f.Linkedin = strings.TrimSpace(linkedin)
	f.Email = strings.TrimSpace(email)
	f.UpdatedAt = time.Now()

	return nil
}

// SetResume records the stored filename of the resume
func (f *Footer) SetResume(filename string) {
	f.Resume = filename
	f.UpdatedAt = time.Now()
}

func validateFooterFields(github, linkedin, email string) error {
	if strings.TrimSpace(github) == "" {
		return shared.NewValidationError("Github link is required")
	}
	if strings.TrimSpace(linkedin) == "" {
		return shared.NewValidationError("Linkedin link is required")
	}
	if strings.TrimSpace(email) == "" {
		return shared.NewValidationError("Email is required")
	}
	return nil
}
