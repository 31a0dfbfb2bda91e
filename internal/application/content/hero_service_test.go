package content

import (
	"context"
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHeroService(repo *MockHeroRepository, store *MockFileStore) *HeroService {
	return NewHeroService(repo, store, ImagePolicy(2<<20), zap.NewNop())
}

func TestHeroServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored record", func(t *testing.T) {
		existing, err := content.NewHero("Jane", "Engineer", "Builds things")
		require.NoError(t, err)

		repo := new(MockHeroRepository)
		repo.On("Get", ctx).Return(existing, nil)

		svc := newTestHeroService(repo, new(MockFileStore))
		hero, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Jane", hero.Name)
	})

	t.Run("returns an empty record when nothing was ever written", func(t *testing.T) {
		repo := new(MockHeroRepository)
		repo.On("Get", ctx).Return(nil, shared.ErrNotFound)

		svc := newTestHeroService(repo, new(MockFileStore))
		hero, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Empty(t, hero.Name)
		assert.Empty(t, hero.ProfileImage)
	})

	t.Run("propagates other errors", func(t *testing.T) {
		repo := new(MockHeroRepository)
		repo.On("Get", ctx).Return(nil, errors.New("connection refused"))

		svc := newTestHeroService(repo, new(MockFileStore))
		_, err := svc.Get(ctx)
		require.Error(t, err)
	})
}

func TestHeroServiceUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the existing image when no file is supplied", func(t *testing.T) {
		existing, err := content.NewHero("Jane", "Engineer", "Builds things")
		require.NoError(t, err)
		existing.SetProfileImage("111-face.png")

		repo := new(MockHeroRepository)
		store := new(MockFileStore)
		repo.On("Get", ctx).Return(existing, nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*content.Hero")).Return(nil)

		svc := newTestHeroService(repo, store)
		hero, err := svc.Upsert(ctx, UpsertHeroInput{Name: "Jane", Role: "Staff Engineer", Headline: "Builds things"})

		require.NoError(t, err)
		assert.Equal(t, "111-face.png", hero.ProfileImage)
		assert.Equal(t, "Staff Engineer", hero.Role)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a new image replaces and removes the old one", func(t *testing.T) {
		existing, err := content.NewHero("Jane", "Engineer", "Builds things")
		require.NoError(t, err)
		existing.SetProfileImage("111-face.png")

		repo := new(MockHeroRepository)
		store := new(MockFileStore)
		repo.On("Get", ctx).Return(existing, nil)
		store.On("Save", ctx, NamespaceHero, mock.Anything).Return("222-face.png", nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*content.Hero")).Return(nil)
		store.On("Delete", ctx, NamespaceHero, "111-face.png").Return(nil)

		svc := newTestHeroService(repo, store)
		hero, err := svc.Upsert(ctx, UpsertHeroInput{
			Name:     "Jane",
			Role:     "Engineer",
			Headline: "Builds things",
			Image:    newPNGUpload("face.png"),
		})

		require.NoError(t, err)
		assert.Equal(t, "222-face.png", hero.ProfileImage)
		store.AssertCalled(t, "Delete", ctx, NamespaceHero, "111-face.png")
	})

	t.Run("works on first write with an image", func(t *testing.T) {
		repo := new(MockHeroRepository)
		store := new(MockFileStore)
		repo.On("Get", ctx).Return(nil, shared.ErrNotFound)
		store.On("Save", ctx, NamespaceHero, mock.Anything).Return("222-face.png", nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*content.Hero")).Return(nil)

		svc := newTestHeroService(repo, store)
		hero, err := svc.Upsert(ctx, UpsertHeroInput{
			Name:     "Jane",
			Role:     "Engineer",
			Headline: "Builds things",
			Image:    newPNGUpload("face.png"),
		})

		require.NoError(t, err)
		assert.Equal(t, "222-face.png", hero.ProfileImage)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("releases the staged image when the write fails", func(t *testing.T) {
		repo := new(MockHeroRepository)
		store := new(MockFileStore)
		repo.On("Get", ctx).Return(nil, shared.ErrNotFound)
		store.On("Save", ctx, NamespaceHero, mock.Anything).Return("222-face.png", nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*content.Hero")).Return(errors.New("write failed"))
		store.On("Delete", ctx, NamespaceHero, "222-face.png").Return(nil)

		svc := newTestHeroService(repo, store)
		_, err := svc.Upsert(ctx, UpsertHeroInput{
			Name:     "Jane",
			Role:     "Engineer",
			Headline: "Builds things",
			Image:    newPNGUpload("face.png"),
		})

		require.Error(t, err)
		store.AssertCalled(t, "Delete", ctx, NamespaceHero, "222-face.png")
	})

	t.Run("rejects blank required fields", func(t *testing.T) {
		svc := newTestHeroService(new(MockHeroRepository), new(MockFileStore))
		_, err := svc.Upsert(ctx, UpsertHeroInput{Name: "  ", Role: "Engineer", Headline: "x"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})
}
