package main

import (
	"github.com/vishaldubey2210/portfolio/config"
	"github.com/vishaldubey2210/portfolio/handlers"
	"github.com/vishaldubey2210/portfolio/middleware"
	"github.com/vishaldubey2210/portfolio/ws"
)

// Handlers holds every handler instance.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Project       *handlers.ProjectHandler
	Blog          *handlers.BlogHandler
	Certification *handlers.CertificationHandler
	Contact       *handlers.ContactHandler
	Stats         *handlers.StatsHandler
	Pages         *handlers.PageHandler
	WS            *ws.Handler
}

func initHandlers(svcs *Services, hub *ws.Hub, adminAuth *middleware.AdminAuth, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth: handlers.NewAuthHandler(svcs.Auth, handlers.CookieSettings{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
		}),
		Project:       handlers.NewProjectHandler(svcs.Project),
		Blog:          handlers.NewBlogHandler(svcs.Blog),
		Certification: handlers.NewCertificationHandler(svcs.Certification),
		Contact:       handlers.NewContactHandler(svcs.Contact),
		Stats:         handlers.NewStatsHandler(svcs.Stats, hub),
		Pages:         handlers.NewPageHandler(cfg.Web.PagesDir, cfg.Web.StaticDir, adminAuth.IsAdmin),
		WS:            ws.NewHandler(hub, cfg.CORS.AllowedOrigins),
	}
}
