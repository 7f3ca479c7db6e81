package repository

import (
	"context"
	"fmt"

	"github.com/vishaldubey2210/portfolio/database"
	"github.com/vishaldubey2210/portfolio/models"
)

type sqliteCertificationRepo struct {
	db database.TxQuerier
}

// NewSQLiteCertificationRepo returns a CertificationRepository backed by db.
func NewSQLiteCertificationRepo(db database.TxQuerier) CertificationRepository {
	return &sqliteCertificationRepo{db: db}
}

func (r *sqliteCertificationRepo) Create(ctx context.Context, cert *models.Certification) error {
	query := `
		INSERT INTO certifications (title, issuer, date, url, image)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		cert.Title,
		cert.Issuer,
		cert.Date,
		cert.URL,
		cert.Image,
	).Scan(&cert.ID, &cert.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create certification: %w", err)
	}

	return nil
}

func (r *sqliteCertificationRepo) List(ctx context.Context) ([]models.Certification, error) {
	query := `
		SELECT id, title, issuer, date, url, image, created_at
		FROM certifications
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	certs := []models.Certification{}
	for rows.Next() {
		var c models.Certification
		if err := rows.Scan(&c.ID, &c.Title, &c.Issuer, &c.Date, &c.URL, &c.Image, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certifications: %w", err)
	}

	return certs, nil
}

func (r *sqliteCertificationRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM certifications WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	return nil
}

func (r *sqliteCertificationRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "certifications")
}
