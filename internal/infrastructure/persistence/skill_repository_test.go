package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockSkillRepository creates a GormSkillRepository with a mocked SQL connection
func newMockSkillRepository(t *testing.T) (*GormSkillRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSkillRepository(gormDB), mock, mockDB
}

func TestNewGormSkillRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockSkillRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormSkillRepository_FindByID(t *testing.T) {
	t.Run("finds existing skill", func(t *testing.T) {
		repo, mock, mockDB := newMockSkillRepository(t)
		defer mockDB.Close()

		skillID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "category", "color", "icon"}).
			AddRow(skillID, "Go", "Backend", "#00ADD8", "123-go.png")

		mock.ExpectQuery(`SELECT \* FROM "skills" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(skillID, 1).
			WillReturnRows(rows)

		skill, err := repo.FindByID(context.Background(), skillID)

		assert.NoError(t, err)
		require.NotNil(t, skill)
		assert.Equal(t, skillID, skill.ID)
		assert.Equal(t, "Go", skill.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown skill", func(t *testing.T) {
		repo, mock, mockDB := newMockSkillRepository(t)
		defer mockDB.Close()

		skillID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "skills" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(skillID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		skill, err := repo.FindByID(context.Background(), skillID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, skill)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSkillRepository_FindAll(t *testing.T) {
	t.Run("orders by creation time descending", func(t *testing.T) {
		repo, mock, mockDB := newMockSkillRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "category", "color", "icon"}).
			AddRow(uuid.New(), "Docker", "DevOps", "#2496ED", "2-docker.png").
			AddRow(uuid.New(), "Go", "Backend", "#00ADD8", "1-go.png")

		mock.ExpectQuery(`SELECT \* FROM "skills" ORDER BY created_at DESC`).
			WillReturnRows(rows)

		skills, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, skills, 2)
		assert.Equal(t, "Docker", skills[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSkillRepository_Delete(t *testing.T) {
	t.Run("deletes existing skill", func(t *testing.T) {
		repo, mock, mockDB := newMockSkillRepository(t)
		defer mockDB.Close()

		skillID := uuid.New()

		mock.ExpectExec(`DELETE FROM "skills" WHERE id = \$1`).
			WithArgs(skillID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), skillID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockSkillRepository(t)
		defer mockDB.Close()

		skillID := uuid.New()

		mock.ExpectExec(`DELETE FROM "skills" WHERE id = \$1`).
			WithArgs(skillID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), skillID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
