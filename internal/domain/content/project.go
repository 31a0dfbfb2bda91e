package content

import (
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
)

// Project is a single portfolio project with an optional thumbnail
type Project struct {
	shared.BaseEntity
	Title      string     `json:"title" gorm:"type:varchar(200);not null"`
	Summary    string     `json:"summary" gorm:"type:text;not null"`
	Points     StringList `json:"points" gorm:"type:text;not null"`
	TechStack  StringList `json:"techStack" gorm:"type:text;not null"`
	LiveLink   string     `json:"liveLink" gorm:"type:varchar(500)"`
	GithubLink string     `json:"githubLink" gorm:"type:varchar(500)"`
	Thumbnail  string     `json:"thumbnail" gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project entry
func NewProject(title, summary string, points, techStack []string, liveLink, githubLink string) (*Project, error) {
	if err := validateProjectFields(title, summary, points, techStack); err != nil {
		return nil, err
	}

	return &Project{
		BaseEntity: shared.NewBaseEntity(),
		Title:      strings.TrimSpace(title),
		Summary:    strings.TrimSpace(summary),
		Points:     StringList(points),
		TechStack:  StringList(techStack),
		LiveLink:   strings.TrimSpace(liveLink),
		GithubLink: strings.TrimSpace(githubLink),
	}, nil
}

// Update replaces all fields. The thumbnail is managed separately.
func (p *Project) Update(title, summary string, points, techStack []string, liveLink, githubLink string) error {
	if err := validateProjectFields(title, summary, points, techStack); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(title)
	p.Summary = strings.TrimSpace(summary)
	p.Points = StringList(points)
	p.TechStack = StringList(techStack)
	p.LiveLink = strings.TrimSpace(liveLink)
	p.GithubLink = strings.TrimSpace(githubLink)
	p.UpdatedAt = time.Now()

	return nil
}

// SetThumbnail records the stored filename of the thumbnail
func (p *Project) SetThumbnail(filename string) {
	p.Thumbnail = filename
	p.UpdatedAt = time.Now()
}

func validateProjectFields(title, summary string, points, techStack []string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewValidationError("Title is required")
	}
	if strings.TrimSpace(summary) == "" {
		return shared.NewValidationError("Summary is required")
	}
	if len(points) == 0 {
		return shared.NewValidationError("Points are required")
	}
	if len(techStack) == 0 {
		return shared.NewValidationError("Tech stack is required")
	}
	return nil
}
