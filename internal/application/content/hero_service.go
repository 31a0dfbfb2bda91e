package content

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UpsertHeroInput contains input for updating the hero section
type UpsertHeroInput struct {
	Name     string
	Role     string
	Headline string
	Image    *FileUpload // optional; existing image is kept when absent
}

// HeroService handles the hero section
type HeroService struct {
	repo        content.HeroRepository
	files       fileLifecycle
	imagePolicy UploadPolicy
	logger      *zap.Logger
}

// NewHeroService creates a new HeroService
func NewHeroService(repo content.HeroRepository, store FileStore, imagePolicy UploadPolicy, logger *zap.Logger) *HeroService {
	return &HeroService{
		repo:        repo,
		files:       fileLifecycle{store: store, logger: logger},
		imagePolicy: imagePolicy,
		logger:      logger,
	}
}

// Get returns the hero section, or an empty record when none was ever written
func (s *HeroService) Get(ctx context.Context) (*content.Hero, error) {
	hero, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &content.Hero{}, nil
		}
		return nil, err
	}
	return hero, nil
}

// Upsert creates or replaces the hero section. Text fields are always
// replaced; the profile image only changes when a new file is supplied,
// in which case the previous file is removed from the store.
func (s *HeroService) Upsert(ctx context.Context, input UpsertHeroInput) (*content.Hero, error) {
	hero, err := content.NewHero(input.Name, input.Role, input.Headline)
	if err != nil {
		return nil, err
	}

	var oldImage string
	existing, err := s.repo.Get(ctx)
	if err == nil {
		hero.SetProfileImage(existing.ProfileImage)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if input.Image != nil {
		stored, err := s.files.stage(ctx, NamespaceHero, s.imagePolicy, input.Image)
		if err != nil {
			return nil, err
		}
		oldImage = hero.ProfileImage
		hero.SetProfileImage(stored)
	}

	if err := s.repo.Upsert(ctx, hero); err != nil {
		// Roll back the staged file so it does not leak
		if input.Image != nil {
			s.files.release(ctx, NamespaceHero, hero.ProfileImage)
		}
		return nil, err
	}

	if oldImage != "" && oldImage != hero.ProfileImage {
		s.files.release(ctx, NamespaceHero, oldImage)
	}

	s.logger.Info("Hero section updated", zap.String("hero_id", hero.ID.String()))
	return hero, nil
}
