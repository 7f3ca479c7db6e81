package services

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
	"github.com/vishaldubey2210/portfolio/repository"
)

// ProjectService manages portfolio projects.
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo         repository.ProjectRepository
	defaultImage string
}

// NewProjectService builds a ProjectService. defaultImage is stored when a
// project is created without an image.
func NewProjectService(repo repository.ProjectRepository, defaultImage string) ProjectService {
	return &projectService{repo: repo, defaultImage: defaultImage}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        models.NormalizeTags(req.Tags),
		GitHub:      req.GitHub,
		Demo:        req.Demo,
		Image:       orDefault(req.Image, s.defaultImage),
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	logger.For("projects").Info().Int64("id", project.ID).Str("title", project.Title).Msg("project created")
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.For("projects").Info().Int64("id", id).Msg("project deleted")
	return nil
}

// orDefault returns v, or def when v is nil or empty.
func orDefault(v *string, def string) *string {
	if v == nil || *v == "" {
		return &def
	}
	return v
}
