// Package repository is the data access layer. Services depend on the
// interfaces declared here; the sqlite_* files implement them.
package repository

import (
	"context"

	"github.com/vishaldubey2210/portfolio/models"
)

// UserRepository stores admin accounts.
//
// Lookups return an error wrapping pkg.ErrNotFound when no row matches.
type UserRepository interface {
	// Create inserts user and fills in ID and CreatedAt. A taken username or
	// email is reported as a pkg.ErrAlreadyExists error carrying the message
	// shown to the client.
	Create(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByUsername matches the username exactly, case included.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Count returns the number of accounts, admin or not.
	Count(ctx context.Context) (int, error)
}
