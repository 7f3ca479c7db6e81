package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vishaldubey2210/portfolio/database"
	"github.com/vishaldubey2210/portfolio/models"
)

// sqliteProjectRepo holds *sql.DB rather than TxQuerier because Create opens
// its own transaction for the project row and its tags.
type sqliteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo returns a ProjectRepository backed by db.
func NewSQLiteProjectRepo(db *sql.DB) ProjectRepository {
	return &sqliteProjectRepo{db: db}
}

func (r *sqliteProjectRepo) Create(ctx context.Context, project *models.Project) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO projects (title, description, category, github, demo, image)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id, created_at`

		err := tx.QueryRowContext(ctx, query,
			project.Title,
			project.Description,
			project.Category,
			project.GitHub,
			project.Demo,
			project.Image,
		).Scan(&project.ID, &project.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		return projectTags.insert(ctx, tx, project.ID, project.Tags)
	})
}

func (r *sqliteProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, title, description, category, github, demo, image, created_at
		FROM projects
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category,
			&p.GitHub, &p.Demo, &p.Image, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	tags, err := projectTags.all(ctx, r.db)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Tags = tagsOrEmpty(tags[projects[i].ID])
	}

	return projects, nil
}

func (r *sqliteProjectRepo) Delete(ctx context.Context, id int64) error {
	// project_tags rows go with it through ON DELETE CASCADE.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *sqliteProjectRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "projects")
}
