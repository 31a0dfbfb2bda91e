package content

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AboutService handles the about section
type AboutService struct {
	repo   content.AboutRepository
	logger *zap.Logger
}

// NewAboutService creates a new AboutService
func NewAboutService(repo content.AboutRepository, logger *zap.Logger) *AboutService {
	return &AboutService{repo: repo, logger: logger}
}

// Get returns the about section, or an empty record when none was ever written
func (s *AboutService) Get(ctx context.Context) (*content.About, error) {
	about, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &content.About{Points: content.StringList{}}, nil
		}
		return nil, err
	}
	return about, nil
}

// Upsert creates or replaces the about section
func (s *AboutService) Upsert(ctx context.Context, points []string) (*content.About, error) {
	about, err := content.NewAbout(points)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, about); err != nil {
		return nil, err
	}

	s.logger.Info("About section updated", zap.Int("points", len(about.Points)))
	return about, nil
}
