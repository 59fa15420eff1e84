package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"icolleague/internal/assistant"
	"icolleague/internal/db"
	"icolleague/internal/handlers"
	"icolleague/internal/handlers/api"
	"icolleague/internal/metrics"
	"icolleague/internal/middleware"
	"icolleague/internal/status"
)

// Deps are the services the routes are wired to.
type Deps struct {
	DB        *db.DB
	Knowledge *assistant.KnowledgeBase
	Recorder  *metrics.Recorder   // optional
	Gatherer  prometheus.Gatherer // served on /metrics; defaults to the global registry
	Status    *status.Template    // defaults to status.DefaultTemplate()
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	authMiddleware := middleware.NewAuthMiddleware(deps.DB)

	tmpl := status.DefaultTemplate()
	if deps.Status != nil {
		tmpl = *deps.Status
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	authHandler := handlers.NewAuthHandler(deps.DB, s.Cfg, s.Log)
	pageHandler := handlers.NewPageHandler(s.Cfg, deps.Knowledge)
	probeHandler := handlers.NewProbeHandler(deps.DB)

	contactsAPI := api.NewContactsHandler(deps.DB, s.Log)
	assistantAPI := api.NewAssistantHandler(deps.Knowledge, lookupRecorder(deps.Recorder), s.Log)
	statusAPI := api.NewStatusHandler(tmpl)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Local accounts
	s.App.Get("/", authMiddleware.OptionalAuth, authHandler.Index)
	s.App.Get("/login", authMiddleware.OptionalAuth, authHandler.LoginPage)
	s.App.Post("/login", authHandler.Login)
	s.App.Get("/register", authMiddleware.OptionalAuth, authHandler.RegisterPage)
	s.App.Post("/register", authHandler.Register)
	s.App.Get("/logout", authHandler.Logout)

	// Single sign-on, when an issuer is configured
	if s.Cfg.IsSSOEnabled() {
		ssoHandler, err := handlers.NewSSOHandler(ctx, s.Cfg, deps.DB, s.Log)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", ssoHandler.Login)
		s.App.Get("/auth/callback", ssoHandler.Callback)
	}

	// Pages
	s.App.Get("/dashboard", authMiddleware.RequireAuth, pageHandler.Dashboard)
	s.App.Get("/contacts", authMiddleware.RequireAuth, pageHandler.Contacts)
	s.App.Get("/assistant", authMiddleware.RequireAuth, pageHandler.Assistant)
	s.App.Get("/status_formatter", authMiddleware.RequireAuth, pageHandler.StatusFormatter)

	// JSON endpoints
	s.App.Post("/search_contacts", authMiddleware.RequireAuthAPI, contactsAPI.Search)
	s.App.Post("/ask_assistant", authMiddleware.RequireAuthAPI, assistantAPI.Ask)
	s.App.Post("/format_status", authMiddleware.RequireAuthAPI, statusAPI.Format)

	return nil
}

// lookupRecorder avoids handing a typed nil to the assistant handler.
func lookupRecorder(r *metrics.Recorder) api.LookupRecorder {
	if r == nil {
		return nil
	}
	return r
}
