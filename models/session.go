package models

import "time"

// Session is a server-side admin session. The cookie only carries its ID;
// deleting the row logs the client out.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AdminCapability is what a successful authorization grants: the right to
// call admin-only operations as this user.
type AdminCapability struct {
	UserID    int64
	Username  string
	SessionID string
}
