package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"go.uber.org/zap"
)

// ProjectInput contains input for creating or updating a project
type ProjectInput struct {
	Title      string
	Summary    string
	Points     []string
	TechStack  []string
	LiveLink   string
	GithubLink string
	Thumbnail  *FileUpload // optional
}

// ProjectService handles the projects section
type ProjectService struct {
	repo        content.ProjectRepository
	files       fileLifecycle
	imagePolicy UploadPolicy
	logger      *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo content.ProjectRepository, store FileStore, imagePolicy UploadPolicy, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:        repo,
		files:       fileLifecycle{store: store, logger: logger},
		imagePolicy: imagePolicy,
		logger:      logger,
	}
}

// List returns all projects in creation order
func (s *ProjectService) List(ctx context.Context) ([]content.Project, error) {
	return s.repo.FindAll(ctx)
}

// Create creates a new project, storing the thumbnail when supplied
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*content.Project, error) {
	project, err := content.NewProject(input.Title, input.Summary, input.Points, input.TechStack, input.LiveLink, input.GithubLink)
	if err != nil {
		return nil, err
	}

	if input.Thumbnail != nil {
		stored, err := s.files.stage(ctx, NamespaceProjects, s.imagePolicy, input.Thumbnail)
		if err != nil {
			return nil, err
		}
		project.SetThumbnail(stored)
	}

	if err := s.repo.Save(ctx, project); err != nil {
		s.files.release(ctx, NamespaceProjects, project.Thumbnail)
		return nil, err
	}

	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("title", project.Title))
	return project, nil
}

// Update replaces all fields of a project. A new thumbnail replaces and
// removes the old one.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input ProjectInput) (*content.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := project.Update(input.Title, input.Summary, input.Points, input.TechStack, input.LiveLink, input.GithubLink); err != nil {
		return nil, err
	}

	oldThumbnail := ""
	if input.Thumbnail != nil {
		stored, err := s.files.stage(ctx, NamespaceProjects, s.imagePolicy, input.Thumbnail)
		if err != nil {
			return nil, err
		}
		oldThumbnail = project.Thumbnail
		project.SetThumbnail(stored)
	}

	if err := s.repo.Save(ctx, project); err != nil {
		if input.Thumbnail != nil {
			s.files.release(ctx, NamespaceProjects, project.Thumbnail)
		}
		return nil, err
	}

	if oldThumbnail != "" && oldThumbnail != project.Thumbnail {
		s.files.release(ctx, NamespaceProjects, oldThumbnail)
	}

	s.logger.Info("Project updated", zap.String("project_id", project.ID.String()))
	return project, nil
}

// Delete removes a project and its stored thumbnail
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.files.release(ctx, NamespaceProjects, project.Thumbnail)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Project deleted", zap.String("project_id", id.String()))
	return nil
}
