// Package middleware holds the http.Handler wrappers applied in front of the
// handlers: the admin session guard, request logging and panic recovery.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/services"
)

type contextKey string

const capabilityKey contextKey = "admin_capability"

// AdminLoginPath is where unauthenticated page requests are sent.
const AdminLoginPath = "/admin"

// AdminAuth guards admin routes with the session cookie.
type AdminAuth struct {
	authorizer services.Authorizer
	cookieName string
}

func NewAdminAuth(authorizer services.Authorizer, cookieName string) *AdminAuth {
	return &AdminAuth{authorizer: authorizer, cookieName: cookieName}
}

// RequireAPI rejects requests without a valid admin session with a 401
// envelope.
func (m *AdminAuth) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capability, err := m.authorize(r)
		if err != nil {
			pkg.Error(w, err, "Authorization failed")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCapability(r.Context(), capability)))
	})
}

// RequirePage redirects requests without a valid admin session to the
// login page.
func (m *AdminAuth) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capability, err := m.authorize(r)
		if err != nil {
			if !errors.Is(err, pkg.ErrUnauthorized) {
				pkg.Error(w, err, "Authorization failed")
				return
			}
			http.Redirect(w, r, AdminLoginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCapability(r.Context(), capability)))
	})
}

// IsAdmin reports whether r carries a valid admin session. Store failures
// count as no.
func (m *AdminAuth) IsAdmin(r *http.Request) bool {
	_, err := m.authorize(r)
	return err == nil
}

func (m *AdminAuth) authorize(r *http.Request) (*models.AdminCapability, error) {
	return m.authorizer.Authorize(r.Context(), SessionToken(r, m.cookieName))
}

// SessionToken returns the session cookie value, or "".
func SessionToken(r *http.Request, cookieName string) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// WithCapability stores capability in ctx.
func WithCapability(ctx context.Context, capability *models.AdminCapability) context.Context {
	return context.WithValue(ctx, capabilityKey, capability)
}

// CapabilityFromContext returns the capability set by the guard, if any.
func CapabilityFromContext(ctx context.Context) (*models.AdminCapability, bool) {
	capability, ok := ctx.Value(capabilityKey).(*models.AdminCapability)
	return capability, ok
}
