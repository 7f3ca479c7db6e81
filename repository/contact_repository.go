package repository

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
)

// ContactRepository is write-only from the API. Count feeds the dashboard.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	Count(ctx context.Context) (int, error)
}
