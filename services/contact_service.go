package services

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
	"github.com/vishaldubey2210/portfolio/repository"
)

// ContactService stores contact form submissions. Nothing is sent out.
type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) error
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.SubjectOrDefault(),
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return err
	}

	logger.For("contact").Info().Int64("id", msg.ID).Str("email", msg.Email).Msg("contact message received")
	return nil
}
