package services

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
	"github.com/vishaldubey2210/portfolio/repository"
)

// CertificationService manages certifications.
type CertificationService interface {
	List(ctx context.Context) ([]models.Certification, error)
	Create(ctx context.Context, req *models.CreateCertificationRequest) (*models.Certification, error)
	Delete(ctx context.Context, id int64) error
}

type certificationService struct {
	repo         repository.CertificationRepository
	defaultImage string
}

func NewCertificationService(repo repository.CertificationRepository, defaultImage string) CertificationService {
	return &certificationService{repo: repo, defaultImage: defaultImage}
}

func (s *certificationService) List(ctx context.Context) ([]models.Certification, error) {
	return s.repo.List(ctx)
}

func (s *certificationService) Create(ctx context.Context, req *models.CreateCertificationRequest) (*models.Certification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cert := &models.Certification{
		Title:  req.Title,
		Issuer: req.Issuer,
		Date:   req.Date,
		URL:    req.URL,
		Image:  orDefault(req.Image, s.defaultImage),
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, err
	}

	logger.For("certifications").Info().Int64("id", cert.ID).Str("title", cert.Title).Msg("certification created")
	return cert, nil
}

func (s *certificationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.For("certifications").Info().Int64("id", id).Msg("certification deleted")
	return nil
}
