package repository

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
)

type CertificationRepository interface {
	Create(ctx context.Context, cert *models.Certification) error
	List(ctx context.Context) ([]models.Certification, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
