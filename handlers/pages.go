package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vishaldubey2210/portfolio/pkg/logger"
)

// PageHandler serves the HTML pages and static assets from disk.
type PageHandler struct {
	pagesDir  string
	staticDir string
	isAdmin   func(r *http.Request) bool
}

// NewPageHandler builds a PageHandler. isAdmin decides whether GET /admin
// shows the login form or skips to the dashboard.
func NewPageHandler(pagesDir, staticDir string, isAdmin func(r *http.Request) bool) *PageHandler {
	return &PageHandler{pagesDir: pagesDir, staticDir: staticDir, isAdmin: isAdmin}
}

// Page returns a handler that serves the named file from the pages directory.
func (h *PageHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, name, http.StatusOK)
	}
}

// AdminLogin godoc
// GET /admin
func (h *PageHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if h.isAdmin != nil && h.isAdmin(r) {
		http.Redirect(w, r, DashboardPath, http.StatusFound)
		return
	}
	h.serve(w, r, "admin_login.html", http.StatusOK)
}

// NotFound serves the home page with a 404 status.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "index.html", http.StatusNotFound)
}

// Static serves files under the static directory. Directory listings and
// paths that try to climb out are refused.
func (h *PageHandler) Static() http.Handler {
	fileServer := http.FileServer(http.Dir(h.staticDir))
	return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if p == "" || strings.HasSuffix(p, "/") || strings.Contains(p, "\\") || strings.Contains(p, "..") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	}))
}

func (h *PageHandler) serve(w http.ResponseWriter, r *http.Request, name string, status int) {
	body, err := os.ReadFile(filepath.Join(h.pagesDir, filepath.FromSlash(name)))
	if err != nil {
		logger.For("pages").Warn().Err(err).Str("page", name).Msg("page not available")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
