package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// Education is a single education-history entry
type Education struct {
	shared.BaseEntity
	Degree    string `json:"degree" gorm:"type:varchar(100);not null"`
	Institute string `json:"institute" gorm:"type:varchar(200);not null"`
	Location  string `json:"location" gorm:"type:varchar(100)"`
	StartYear string `json:"startYear" gorm:"type:varchar(10);not null"`
	EndYear   string `json:"endYear" gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for GORM
func (Education) TableName() string {
	return "education"
}

// NewEducation creates a new education-history entry
func NewEducation(degree, institute, location, startYear, endYear string) (*Education, error) {
	if err := validateEducationFields(degree, institute, startYear, endYear); err != nil {
		return nil, err
	}

	return &Education{
		BaseEntity: shared.NewBaseEntity(),
		Degree:     strings.TrimSpace(degree),
		Institute:  strings.TrimSpace(institute),
		Location:   strings.TrimSpace(location),
		StartYear:  strings.TrimSpace(startYear),
		EndYear:    strings.TrimSpace(endYear),
	}, nil
}

// Update replaces all fields
func (e *Education) Update(degree, institute, location, startYear, endYear string) error {
	if err := validateEducationFields(degree, institute, startYear, endYear); err != nil {
		return err
	}

	e.Degree = strings.TrimSpace(degree)
	e.Institute = strings.TrimSpace(institute)
	e.Location = strings.TrimSpace(location)
	e.StartYear = strings.TrimSpace(startYear)
	e.EndYear = strings.TrimSpace(endYear)
	e.UpdatedAt = time.Now()

	return nil
}

func validateEducationFields(degree, institute, startYear, endYear string) error {
	if strings.TrimSpace(degree) == "" {
		return shared.NewValidationError("Degree is required")
	}
	if strings.TrimSpace(institute) == "" {
		return shared.NewValidationError("Institute is required")
	}
	if strings.TrimSpace(startYear) == "" {
		return shared.NewValidationError("Start year is required")
	}
	if strings.TrimSpace(endYear) == "" {
		return shared.NewValidationError("End year is required")
	}
	return nil
}
