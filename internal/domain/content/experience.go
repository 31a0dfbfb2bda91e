package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// Experience is a single work-history entry
type Experience struct {
	shared.BaseEntity
	Role      string     `json:"role" gorm:"type:varchar(100);not null"`
	Company   string     `json:"company" gorm:"type:varchar(100);not null"`
	Location  string     `json:"location" gorm:"type:varchar(100)"`
	StartDate string     `json:"startDate" gorm:"type:varchar(50);not null"`
	EndDate   string     `json:"endDate" gorm:"type:varchar(50);not null;default:'Present'"`
	Points    StringList `json:"points" gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Experience) TableName() string {
	return "experiences"
}

// NewExperience creates a new work-history entry. An empty end date
// means the position is current and defaults to "Present".
func NewExperience(role, company, location, startDate, endDate string, points []string) (*Experience, error) {
	if err := validateExperienceFields(role, company, startDate); err != nil {
		return nil, err
	}

	if strings.TrimSpace(endDate) == "" {
		endDate = "Present"
	}

	return &Experience{
		BaseEntity: shared.NewBaseEntity(),
		Role:       strings.TrimSpace(role),
		Company:    strings.TrimSpace(company),
		Location:   strings.TrimSpace(location),
		StartDate:  strings.TrimSpace(startDate),
		EndDate:    strings.TrimSpace(endDate),
		Points:     StringList(points),
	}, nil
}

// Update replaces all fields
func (e *Experience) Update(role, company, location, startDate, endDate string, points []string) error {
	if err := validateExperienceFields(role, company, startDate); err != nil {
		return err
	}

	if strings.TrimSpace(endDate) == "" {
		endDate = "Present"
	}

	e.Role = strings.TrimSpace(role)
	e.Company = strings.TrimSpace(company)
	e.Location = strings.TrimSpace(location)
	e.StartDate = strings.TrimSpace(startDate)
	e.EndDate = strings.TrimSpace(endDate)
	e.Points = StringList(points)
	e.UpdatedAt = time.Now()

	return nil
}

func validateExperienceFields(role, company, startDate string) error {
	if strings.TrimSpace(role) == "" {
		return shared.NewValidationError("Role is required")
	}
	if strings.TrimSpace(company) == "" {
		return shared.NewValidationError("Company is required")
	}
	if strings.TrimSpace(startDate) == "" {
		return shared.NewValidationError("Start date is required")
	}
	return nil
}
