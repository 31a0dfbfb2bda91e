package content

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UpsertFooterInput contains input for updating the footer section
type UpsertFooterInput struct {
	Github   string
	Linkedin string
	Email    string
	Resume   *FileUpload // optional; existing resume is kept when absent
}

// FooterService handles the footer section
type FooterService struct {
	repo      content.FooterRepository
	files     fileLifecycle
	pdfPolicy UploadPolicy
	logger    *zap.Logger
}

// NewFooterService creates a new FooterService
func NewFooterService(repo content.FooterRepository, store FileStore, pdfPolicy UploadPolicy, logger *zap.Logger) *FooterService {
	return &FooterService{
		repo:      repo,
		files:     fileLifecycle{store: store, logger: logger},
		pdfPolicy: pdfPolicy,
		logger:    logger,
	}
}

// Get returns the footer section, or an empty record when none was ever written
func (s *FooterService) Get(ctx context.Context) (*content.Footer, error) {
	footer, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &content.Footer{}, nil
		}
		return nil, err
	}
	return footer, nil
}

// Upsert creates or replaces the footer section. The resume file only
// changes when a new upload is supplied.
func (s *FooterService) Upsert(ctx context.Context, input UpsertFooterInput) (*content.Footer, error) {
	footer, err := content.NewFooter(input.Github, input.Linkedin, input.Email)
	if err != nil {
		return nil, err
	}

	var oldResume string
	existing, err := s.repo.Get(ctx)
	if err == nil {
		footer.SetResume(existing.Resume)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if input.Resume != nil {
		stored, err := s.files.stage(ctx, NamespaceResume, s.pdfPolicy, input.Resume)
		if err != nil {
			return nil, err
		}
		oldResume = footer.Resume
		footer.SetResume(stored)
	}

	if err := s.repo.Upsert(ctx, footer); err != nil {
		if input.Resume != nil {
			s.files.release(ctx, NamespaceResume, footer.Resume)
		}
		return nil, err
	}

	if oldResume != "" && oldResume != footer.Resume {
		s.files.release(ctx, NamespaceResume, oldResume)
	}

	s.logger.Info("Footer section updated", zap.String("footer_id", footer.ID.String()))
	return footer, nil
}
