package content

import (
	"context"

	"github.com/google/uuid"
)

// HeroRepository defines the interface for hero persistence
type HeroRepository interface {
	// Get returns the hero record, or shared.ErrNotFound when none exists
	Get(ctx context.Context) (*Hero, error)

	// Upsert creates or replaces the single hero record
	Upsert(ctx context.Context, hero *Hero) error
}

// AboutRepository defines the interface for about persistence
type AboutRepository interface {
	// Get returns the about record, or shared.ErrNotFound when none exists
	Get(ctx context.Context) (*About, error)

	// Upsert creates or replaces the single about record
	Upsert(ctx context.Context, about *About) error
}

// FooterRepository defines the interface for footer persistence
type FooterRepository interface {
	// Get returns the footer record, or shared.ErrNotFound when none exists
	Get(ctx context.Context) (*Footer, error)

	// Upsert creates or replaces the single footer record
	Upsert(ctx context.Context, footer *Footer) error
}

// SkillRepository defines the interface for skill persistence
type SkillRepository interface {
	// FindAll returns all skills, most recently created first
	FindAll(ctx context.Context) ([]Skill, error)

	// FindByID finds a skill by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)

	// Save creates or updates a skill
	Save(ctx context.Context, skill *Skill) error

	// Delete deletes a skill
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExperienceRepository defines the interface for experience persistence
type ExperienceRepository interface {
	// FindAll returns all experiences, most recently created first
	FindAll(ctx context.Context) ([]Experience, error)

	// FindByID finds an experience by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)

	// Save creates or updates an experience
	Save(ctx context.Context, experience *Experience) error

	// Delete deletes an experience
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// FindAll returns all projects in creation order
	FindAll(ctx context.Context) ([]Project, error)

	// FindByID finds a project by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// Save creates or updates a project
	Save(ctx context.Context, project *Project) error

	// Delete deletes a project
	Delete(ctx context.Context, id uuid.UUID) error
}

// EducationRepository defines the interface for education persistence
type EducationRepository interface {
	// FindAll returns all education entries, latest start year first
	FindAll(ctx context.Context) ([]Education, error)

	// FindByID finds an education entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)

	// Save creates or updates an education entry
	Save(ctx context.Context, education *Education) error

	// Delete deletes an education entry
	Delete(ctx context.Context, id uuid.UUID) error
}

// CertificationRepository defines the interface for certification persistence
type CertificationRepository interface {
	// FindAll returns all certifications, latest year first
	FindAll(ctx context.Context) ([]Certification, error)

	// FindByID finds a certification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Certification, error)

	// Save creates or updates a certification
	Save(ctx context.Context, certification *Certification) error

	// Delete deletes a certification
	Delete(ctx context.Context, id uuid.UUID) error
}
