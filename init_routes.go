package main

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/vishaldubey2210/portfolio/middleware"
)

// initRoutes registers every route on mux and returns the full handler
// chain: logging, panic recovery, CORS, then the mux.
func initRoutes(mux *http.ServeMux, h *Handlers, adminAuth *middleware.AdminAuth, allowedOrigins []string) http.Handler {
	api := func(handler http.HandlerFunc) http.Handler {
		return adminAuth.RequireAPI(handler)
	}
	page := func(handler http.HandlerFunc) http.Handler {
		return adminAuth.RequirePage(handler)
	}

	// ─── Public pages ───
	mux.HandleFunc("GET /{$}", h.Pages.Page("index.html"))
	mux.HandleFunc("GET /about", h.Pages.Page("about.html"))
	mux.HandleFunc("GET /projects", h.Pages.Page("projects.html"))
	mux.HandleFunc("GET /blog", h.Pages.Page("blog.html"))
	mux.HandleFunc("GET /blog/{slug}", h.Pages.Page("blog_post.html"))
	mux.HandleFunc("GET /certifications", h.Pages.Page("certifications.html"))
	mux.HandleFunc("GET /contact", h.Pages.Page("contact.html"))
	mux.Handle("GET /static/", h.Pages.Static())

	// ─── Admin pages ───
	mux.HandleFunc("GET /admin", h.Pages.AdminLogin)
	mux.HandleFunc("GET /admin/logout", h.Auth.Logout)
	mux.Handle("GET /admin/dashboard", page(h.Pages.Page("admin/dashboard.html")))
	mux.Handle("GET /admin/projects", page(h.Pages.Page("admin/projects_manager.html")))
	mux.Handle("GET /admin/blogs", page(h.Pages.Page("admin/blogs_manager.html")))
	mux.Handle("GET /admin/certifications", page(h.Pages.Page("admin/certifications_manager.html")))
	mux.Handle("GET /admin/analytics", page(h.Pages.Page("admin/analytics.html")))

	// ─── Public API ───
	mux.HandleFunc("GET /api/health", h.Stats.Health)
	mux.HandleFunc("GET /api/projects", h.Project.List)
	mux.HandleFunc("GET /api/blogs", h.Blog.List)
	mux.HandleFunc("GET /api/blogs/{slug}", h.Blog.Get)
	mux.HandleFunc("GET /api/certifications", h.Certification.List)
	mux.HandleFunc("POST /api/contact", h.Contact.Submit)

	// ─── Admin API ───
	mux.HandleFunc("POST /api/admin/login", h.Auth.Login)
	mux.HandleFunc("POST /api/admin/signup", h.Auth.Signup)

	mux.Handle("GET /api/admin/projects", api(h.Project.List))
	mux.Handle("POST /api/admin/projects", api(h.Project.Create))
	mux.Handle("DELETE /api/admin/projects", api(h.Project.Delete))

	mux.Handle("GET /api/admin/blogs", api(h.Blog.List))
	mux.Handle("POST /api/admin/blogs", api(h.Blog.Create))
	mux.Handle("DELETE /api/admin/blogs", api(h.Blog.Delete))

	mux.Handle("GET /api/admin/certifications", api(h.Certification.List))
	mux.Handle("POST /api/admin/certifications", api(h.Certification.Create))
	mux.Handle("DELETE /api/admin/certifications", api(h.Certification.Delete))

	mux.Handle("GET /api/admin/stats", api(h.Stats.Stats))

	// ─── Push channel ───
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)

	// Anything else gets the home page with a 404.
	mux.HandleFunc("/", h.Pages.NotFound)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return middleware.RequestLogger(middleware.Recover(corsHandler.Handler(mux)))
}
