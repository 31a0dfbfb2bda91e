package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Admin is the single seeded identity allowed to mutate site content.
// There is no registration path; the record is created by the seeder.
type Admin struct {
	shared.BaseEntity
	Email        string `json:"email" gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Admin) TableName() string {
	return "admins"
}

// NewAdmin creates the admin identity with a hashed password
func NewAdmin(email, password string) (*Admin, error) {
	if err := validateAdminEmail(email); err != nil {
		return nil, err
	}

	admin := &Admin{
		BaseEntity: shared.NewBaseEntity(),
		Email:      strings.ToLower(strings.TrimSpace(email)),
	}
	if err := admin.SetPassword(password); err != nil {
		return nil, err
	}

	return admin, nil
}

// SetPassword hashes and stores a new password
func (a *Admin) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	a.PasswordHash = string(hash)
	a.UpdatedAt = time.Now()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (a *Admin) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

func validateAdminEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
