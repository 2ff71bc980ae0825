package server

import (
	"fmt"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rebrain/internal/auth"
	"rebrain/internal/handlers"
	"rebrain/internal/handlers/api"
	"rebrain/internal/metrics"
	"rebrain/internal/middleware"
	"rebrain/internal/service"
	"rebrain/internal/validation"
)

// Store is the persistence the routes are wired to. *db.DB satisfies it.
type Store interface {
	service.Store
	handlers.Pinger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(store Store) error {
	tokens, err := auth.NewTokenIssuer(s.Cfg.JWTSecret, s.Cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("token issuer: %w", err)
	}
	validate := validation.New()

	// Services
	accounts := service.NewAccounts(store, auth.NewPasswordHasher(s.Cfg.BcryptCost))
	contents := service.NewContents(store)
	sharing := service.NewSharing(store, nil)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// Initialize handlers
	authHandler := api.NewAuthHandler(accounts, tokens, validate)
	contentHandler := api.NewContentHandler(contents, validate)
	shareHandler := api.NewShareHandler(sharing, validate, metrics.RecordShareView)
	sharePageHandler := handlers.NewSharePageHandler(sharing, s.Cfg, metrics.RecordShareView)
	probeHandler := handlers.NewProbeHandler(store)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Post("/signup", authHandler.Signup)
	v1.Post("/signin", authHandler.Signin)

	v1.Post("/content", authMiddleware.RequireAuth, contentHandler.Create)
	v1.Get("/content", authMiddleware.RequireAuth, contentHandler.List)
	v1.Delete("/content/:id", authMiddleware.RequireAuth, contentHandler.Delete)
	v1.Get("/tags", authMiddleware.RequireAuth, contentHandler.Tags)

	// The literal route must precede /brain/:hash.
	v1.Post("/brain/share", authMiddleware.RequireAuth, shareHandler.Share)
	v1.Get("/brain/share", authMiddleware.RequireAuth, shareHandler.Status)
	v1.Get("/brain/:hash", shareHandler.Resolve)

	// HTML share page
	s.App.Get("/share/:hash", sharePageHandler.Show)

	return nil
}
