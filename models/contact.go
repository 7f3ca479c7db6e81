package models

import (
	"strings"
	"time"

	"github.com/vishaldubey2210/portfolio/pkg/validate"
)

// DefaultContactSubject is stored when the sender leaves the subject out.
const DefaultContactSubject = "No Subject"

// ContactMessage is a message left through the contact form. It is never
// read back over the API.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required"`
}

var contactMessages = validate.Messages{
	"": "All fields required",
}

// Validate trims the required fields and checks they are present.
func (r *ContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	return validate.Struct(r, contactMessages)
}

// SubjectOrDefault returns the subject, or DefaultContactSubject when the
// field was absent.
func (r *ContactRequest) SubjectOrDefault() string {
	if r.Subject == nil {
		return DefaultContactSubject
	}
	return *r.Subject
}
