package models

import (
	"time"

	"github.com/vishaldubey2210/portfolio/pkg/validate"
)

// Certification is an earned certificate. Date is free text ("Mar 2024").
type Certification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	Date      string    `json:"date"`
	URL       *string   `json:"url"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"-"`
}

// CreateCertificationRequest is the body of POST /api/admin/certifications.
type CreateCertificationRequest struct {
	Title  string  `json:"title" validate:"required"`
	Issuer string  `json:"issuer" validate:"required"`
	Date   string  `json:"date" validate:"required"`
	URL    *string `json:"url"`
	Image  *string `json:"image"`
}

var certificationMessages = validate.Messages{
	"": "Title, issuer and date are required",
}

// Validate checks the required fields.
func (r *CreateCertificationRequest) Validate() error {
	return validate.Struct(r, certificationMessages)
}
