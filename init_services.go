package main

import (
	"github.com/vishaldubey2210/portfolio/config"
	"github.com/vishaldubey2210/portfolio/services"
	"github.com/vishaldubey2210/portfolio/ws"
)

// Services holds every service instance.
type Services struct {
	Auth          services.AuthService
	Project       services.ProjectService
	Blog          services.BlogService
	Certification services.CertificationService
	Contact       services.ContactService
	Stats         services.StatsService
}

func initServices(repos *Repositories, hub *ws.Hub, cfg *config.Config) *Services {
	return &Services{
		Auth: services.NewAuthService(
			repos.User,
			repos.Session,
			cfg.Session.Secret,
			cfg.Session.Expiry,
			cfg.Session.BcryptCost,
		),
		Project:       services.NewProjectService(repos.Project, cfg.Content.DefaultProjectImage),
		Blog:          services.NewBlogService(repos.Blog, cfg.Content.DefaultAuthor),
		Certification: services.NewCertificationService(repos.Certification, cfg.Content.DefaultCertImage),
		Contact:       services.NewContactService(repos.Contact),
		Stats: services.NewStatsService(services.StatsSources{
			Projects:       repos.Project,
			Blogs:          repos.Blog,
			Certifications: repos.Certification,
			Users:          repos.User,
			Messages:       repos.Contact,
		}, hub),
	}
}
