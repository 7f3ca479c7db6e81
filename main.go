// Package main is the portfolio server entry point. It loads the config,
// opens the store, wires repositories → services → handlers, starts the
// visitor hub and serves HTTP until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vishaldubey2210/portfolio/config"
	"github.com/vishaldubey2210/portfolio/database"
	"github.com/vishaldubey2210/portfolio/middleware"
	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
	"github.com/vishaldubey2210/portfolio/ws"
)

const sessionPurgeInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Setup("info", true)
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	lg := logger.For("main")
	lg.Info().Int("port", cfg.Server.Port).Msg("portfolio server starting")
	if cfg.Session.Generated {
		lg.Warn().Msg("SECRET_KEY not set; generated a random one, sessions will not survive a restart")
	}

	// ─── 1. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	// ─── 2. Application ───
	app := newApp(db, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.services.Auth.EnsureSeedAdmin(ctx, models.SeedAdmin{
		Username: cfg.Seed.AdminUsername,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		FullName: cfg.Seed.AdminFullName,
	}); err != nil {
		lg.Fatal().Err(err).Msg("failed to create seed admin")
	}

	go app.hub.Run()
	go purgeSessions(ctx, app.services)

	// ─── 3. HTTP server ───
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		lg.Info().Str("addr", cfg.Server.Addr()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	lg.Info().Msg("shutting down")

	app.hub.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("forced shutdown")
		return
	}

	lg.Info().Msg("server stopped gracefully")
}

// app is the wired application, without the listener and background loops.
type app struct {
	hub      *ws.Hub
	services *Services
	handler  http.Handler
}

func newApp(db *database.DB, cfg *config.Config) *app {
	repos := initRepositories(db.Conn)
	hub := ws.NewHub()
	svcs := initServices(repos, hub, cfg)
	adminAuth := middleware.NewAdminAuth(svcs.Auth, cfg.Session.CookieName)
	h := initHandlers(svcs, hub, adminAuth, cfg)

	return &app{
		hub:      hub,
		services: svcs,
		handler:  initRoutes(http.NewServeMux(), h, adminAuth, cfg.CORS.AllowedOrigins),
	}
}

// purgeSessions deletes expired session rows every sessionPurgeInterval
// until ctx is done.
func purgeSessions(ctx context.Context, svcs *Services) {
	lg := logger.For("sessions")
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svcs.Auth.PurgeExpiredSessions(ctx)
			if err != nil {
				lg.Error().Err(err).Msg("failed to purge expired sessions")
				continue
			}
			if n > 0 {
				lg.Info().Int64("removed", n).Msg("expired sessions purged")
			}
		}
	}
}
