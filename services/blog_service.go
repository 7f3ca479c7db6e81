package services

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
	"github.com/vishaldubey2210/portfolio/repository"
)

// BlogService manages blog posts.
type BlogService interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	// Create derives the slug from the title when none is given. A taken
	// slug is an ErrAlreadyExists; no suffix is tried.
	Create(ctx context.Context, req *models.CreateBlogRequest) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

type blogService struct {
	repo          repository.BlogRepository
	defaultAuthor string
}

func NewBlogService(repo repository.BlogRepository, defaultAuthor string) BlogService {
	return &blogService{repo: repo, defaultAuthor: defaultAuthor}
}

func (s *blogService) List(ctx context.Context) ([]models.BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *blogService) Create(ctx context.Context, req *models.CreateBlogRequest) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Title)
	}

	post := &models.BlogPost{
		Title:   req.Title,
		Slug:    slug,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Author:  s.defaultAuthor,
		Tags:    models.NormalizeTags(req.Tags),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	logger.For("blogs").Info().Int64("id", post.ID).Str("slug", post.Slug).Msg("blog post published")
	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.For("blogs").Info().Int64("id", id).Msg("blog post deleted")
	return nil
}
