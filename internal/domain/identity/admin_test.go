package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdmin(t *testing.T) {
	t.Run("creates admin with hashed password", func(t *testing.T) {
		admin, err := NewAdmin("admin@example.com", "s3cret-pass")
		require.NoError(t, err)
		require.NotNil(t, admin)

		assert.Equal(t, "admin@example.com", admin.Email)
		assert.NotEmpty(t, admin.PasswordHash)
		assert.NotEqual(t, "s3cret-pass", admin.PasswordHash)
	})

	t.Run("lowercases email", func(t *testing.T) {
		admin, err := NewAdmin("Admin@Example.COM", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", admin.Email)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewAdmin("not-an-email", "s3cret-pass")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewAdmin("admin@example.com", "short")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})
}

func TestAdminVerifyPassword(t *testing.T) {
	admin, err := NewAdmin("admin@example.com", "s3cret-pass")
	require.NoError(t, err)

	t.Run("accepts the correct password", func(t *testing.T) {
		assert.True(t, admin.VerifyPassword("s3cret-pass"))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		assert.False(t, admin.VerifyPassword("wrong-pass"))
	})

	t.Run("rejects after password change", func(t *testing.T) {
		require.NoError(t, admin.SetPassword("new-password"))
		assert.False(t, admin.VerifyPassword("s3cret-pass"))
		assert.True(t, admin.VerifyPassword("new-password"))
	})
}
