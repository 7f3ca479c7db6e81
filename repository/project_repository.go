package repository

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
)

// ProjectRepository stores projects and their ordered tags.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	// List returns every project, newest first.
	List(ctx context.Context) ([]models.Project, error)
	// Delete removes the project if it exists. A missing id is not an error.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
