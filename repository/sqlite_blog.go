package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vishaldubey2210/portfolio/database"
	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
)

type sqliteBlogRepo struct {
	db *sql.DB
}

// NewSQLiteBlogRepo returns a BlogRepository backed by db.
func NewSQLiteBlogRepo(db *sql.DB) BlogRepository {
	return &sqliteBlogRepo{db: db}
}

const blogColumns = `id, title, slug, excerpt, content, author, published_at`

func (r *sqliteBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO blogs (title, slug, excerpt, content, author)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id, published_at`

		err := tx.QueryRowContext(ctx, query,
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.Author,
		).Scan(&post.ID, &post.PublishedAt)
		if err != nil {
			if isUniqueViolation(err, "blogs.slug") {
				return pkg.Conflict("A blog post with this slug already exists")
			}
			return fmt.Errorf("failed to create blog post: %w", err)
		}

		return blogTags.insert(ctx, tx, post.ID, post.Tags)
	})
}

func (r *sqliteBlogRepo) List(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+blogColumns+" FROM blogs ORDER BY published_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		var p models.BlogPost
		if err := scanBlog(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blog posts: %w", err)
	}

	tags, err := blogTags.all(ctx, r.db)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Tags = tagsOrEmpty(tags[posts[i].ID])
	}

	return posts, nil
}

func (r *sqliteBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	row := r.db.QueryRowContext(ctx, "SELECT "+blogColumns+" FROM blogs WHERE slug = ?", slug)
	if err := scanBlog(row, post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkg.NotFound("Blog post not found")
		}
		return nil, err
	}

	tags, err := blogTags.forOwner(ctx, r.db, post.ID)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	return post, nil
}

func (r *sqliteBlogRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return nil
}

func (r *sqliteBlogRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "blogs")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner, p *models.BlogPost) error {
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Author, &p.PublishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan blog post: %w", err)
	}
	return nil
}
