package repository

import (
	"context"
	"fmt"

	"github.com/vishaldubey2210/portfolio/database"
	"github.com/vishaldubey2210/portfolio/models"
)

type sqliteContactRepo struct {
	db database.TxQuerier
}

// NewSQLiteContactRepo returns a ContactRepository backed by db.
func NewSQLiteContactRepo(db database.TxQuerier) ContactRepository {
	return &sqliteContactRepo{db: db}
}

func (r *sqliteContactRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	return nil
}

func (r *sqliteContactRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "contact_messages")
}
