package repository

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
)

// BlogRepository stores blog posts and their ordered tags.
type BlogRepository interface {
	// Create fails with pkg.ErrAlreadyExists when the slug is taken.
	Create(ctx context.Context, post *models.BlogPost) error
	// List returns every post, most recently published first.
	List(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
