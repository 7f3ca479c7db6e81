package handlers

import (
	"net/http"
	"time"

	"github.com/vishaldubey2210/portfolio/middleware"
	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
	"github.com/vishaldubey2210/portfolio/services"
)

// DashboardPath is where a successful login or signup sends the browser.
const DashboardPath = "/admin/dashboard"

// CookieSettings describes the session cookie.
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthHandler serves admin login, signup and logout.
type AuthHandler struct {
	authService services.AuthService
	cookie      CookieSettings
}

func NewAuthHandler(authService services.AuthService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Login godoc
// POST /api/admin/login
// Body: { "username": "...", "password": "..." }
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pkg.Error(w, err, "")
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err, "Login failed")
		return
	}

	h.setCookie(w, token.Token, token.ExpiresAt)
	pkg.JSON(w, http.StatusOK, pkg.Fields{
		"message":  "Login successful",
		"redirect": DashboardPath,
	})
}

// Signup godoc
// POST /api/admin/signup
// Body: { "username", "email", "password", "full_name" }
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pkg.Error(w, err, "")
		return
	}

	token, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err, "Signup failed")
		return
	}

	h.setCookie(w, token.Token, token.ExpiresAt)
	pkg.JSON(w, http.StatusOK, pkg.Fields{
		"message":  "Admin account created successfully!",
		"redirect": DashboardPath,
	})
}

// Logout godoc
// GET /admin/logout
// Always clears the cookie and redirects to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.SessionToken(r, h.cookie.Name)); err != nil {
		logger.For("auth").Error().Err(err).Msg("failed to delete session on logout")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, middleware.AdminLoginPath, http.StatusFound)
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
