// Package models defines the domain types shared by the repository, service
// and handler layers, together with the request payloads and their
// validation rules.
package models

import (
	"strings"
	"time"

	"github.com/vishaldubey2210/portfolio/pkg/validate"
)

// User is an account row. Every registered user is an admin; IsAdmin can
// still be revoked directly in the store.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupRequest is the body of POST /api/admin/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

var signupMessages = validate.Messages{
	"required":     "All fields are required",
	"Password.min": "Password must be at least 6 characters",
}

// Validate trims the text fields (not the password) and checks presence
// and the minimum password length.
func (r *SignupRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.FullName = strings.TrimSpace(r.FullName)
	return validate.Struct(r, signupMessages)
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = validate.Messages{
	"": "Username and password required",
}

// Validate trims the username and checks both fields are present.
func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	return validate.Struct(r, loginMessages)
}

// SeedAdmin describes the account created on first run.
type SeedAdmin struct {
	Username string
	Email    string
	Password string
	FullName string
}
