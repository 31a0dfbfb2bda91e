package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// Certification is a single certification entry
type Certification struct {
	shared.BaseEntity
	Title  string `json:"title" gorm:"type:varchar(200);not null"`
	Issuer string `json:"issuer" gorm:"type:varchar(200)"`
	Year   string `json:"year" gorm:"type:varchar(10)"`
}

// TableName returns the table name for GORM
func (Certification) TableName() string {
	return "certifications"
}

// NewCertification creates a new certification entry
func NewCertification(title, issuer, year string) (*Certification, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewValidationError("Title is required")
	}

	return &Certification{
		BaseEntity: shared.NewBaseEntity(),
		Title:      strings.TrimSpace(title),
		Issuer:     strings.TrimSpace(issuer),
		Year:       strings.TrimSpace(year),
	}, nil
}

// Update replaces all fields
func (c *Certification) Update(title, issuer, year string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewValidationError("Title is required")
	}

	c.Title = strings.TrimSpace(title)
	c.Issuer = strings.TrimSpace(issuer)
	c.Year = strings.TrimSpace(year)
	c.UpdatedAt = time.Now()

	return nil
}
