package identity

import "context"

// AdminRepository defines the interface for admin persistence
type AdminRepository interface {
	// FindByEmail finds the admin by email
	FindByEmail(ctx context.Context, email string) (*Admin, error)

	// Get returns the seeded admin record, or shared.ErrNotFound when none exists
	Get(ctx context.Context) (*Admin, error)

	// Save creates or updates the admin record
	Save(ctx context.Context, admin *Admin) error
}
