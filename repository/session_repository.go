package repository

import (
	"context"
	"time"

	"github.com/vishaldubey2210/portfolio/models"
)

// SessionRepository stores server-side admin sessions.
// The row is the source of truth for a session: a signed cookie whose row is
// gone no longer authorizes anything.
type SessionRepository interface {
	// Create stores session. The caller assigns ID.
	Create(ctx context.Context, session *models.Session) error

	// GetByID returns the session even when it has expired; callers decide
	// with Session.Expired. A missing row wraps pkg.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// DeleteByID removes one session. Deleting an unknown id is not an error.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByUserID removes every session of one user.
	DeleteByUserID(ctx context.Context, userID int64) error

	// DeleteExpired removes sessions whose expiry is at or before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
