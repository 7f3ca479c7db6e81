// Package pkg holds helpers shared by every layer: domain error kinds and the
// JSON response envelope.
//
// Services return errors built from the kinds below; handlers never inspect
// error strings, they call Error and let the kind pick the status code.
//
//	if errors.Is(err, pkg.ErrUnauthorized) { ... }
package pkg

import (
	"errors"
	"fmt"
)

// Error kinds. The HTTP mapping lives in response.go.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)

// AppError is a domain error whose Message is safe to show to the client.
type AppError struct {
	Kind    error
	Message string
	Err     error // optional cause, logged but never sent
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NewError builds a client-facing error of the given kind.
func NewError(kind error, message string) error {
	return &AppError{Kind: kind, Message: message}
}

// BadRequest is shorthand for a validation failure.
func BadRequest(message string) error {
	return &AppError{Kind: ErrBadRequest, Message: message}
}

// Unauthorized is shorthand for an authentication failure.
func Unauthorized(message string) error {
	return &AppError{Kind: ErrUnauthorized, Message: message}
}

// Conflict is shorthand for a unique-constraint violation.
func Conflict(message string) error {
	return &AppError{Kind: ErrAlreadyExists, Message: message}
}

// NotFound is shorthand for a missing resource.
func NotFound(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// PublicMessage returns the client-safe message carried by err, if any.
func PublicMessage(err error) (string, bool) {
	var e *AppError
	if errors.As(err, &e) && e.Message != "" {
		return e.Message, true
	}
	return "", false
}
