package models

import (
	"time"

	"github.com/vishaldubey2210/portfolio/pkg/validate"
)

// Project is a portfolio project.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	GitHub      *string   `json:"github"`
	Demo        *string   `json:"demo"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"-"`
}

// CreateProjectRequest is the body of POST /api/admin/projects.
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	GitHub      *string  `json:"github"`
	Demo        *string  `json:"demo"`
	Image       *string  `json:"image"`
}

var projectMessages = validate.Messages{
	"": "Title, description and category are required",
}

// Validate checks the required fields.
func (r *CreateProjectRequest) Validate() error {
	return validate.Struct(r, projectMessages)
}
