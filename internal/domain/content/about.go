package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// MinAboutPoints is the minimum number of points the about section must carry
const MinAboutPoints = 2

// About is the about section of the site, an ordered list of short
// paragraphs. At most one record exists; writes go through an upsert.
type About struct {
	shared.BaseEntity
	Points StringList `json:"points" gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (About) TableName() string {
	return "about"
}

// NewAbout creates the about section content
func NewAbout(points []string) (*About, error) {
	cleaned, err := validateAboutPoints(points)
	if err != nil {
		return nil, err
	}

	return &About{
		BaseEntity: shared.NewBaseEntity(),
		Points:     cleaned,
	}, nil
}

// Update replaces the points list
func (a *About) Update(points []string) error {
	cleaned, err := validateAboutPoints(points)
	if err != nil {
		return err
	}

	a.Points = cleaned
	a.UpdatedAt = time.Now()

	return nil
}

func validateAboutPoints(points []string) (StringList, error) {
	cleaned := make(StringList, 0, len(points))
	for _, p := range points {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) < MinAboutPoints {
		return nil, shared.NewValidationError("At least 2 points are required")
	}
	return cleaned, nil
}
