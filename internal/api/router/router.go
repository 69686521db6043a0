package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/handlers"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/middleware"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/config"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups all HTTP handlers wired into the router
type Handlers struct {
	Health         *handlers.HealthHandler
	Query          *handlers.QueryHandler
	Contribution   *handlers.ContributionHandler
	Recommendation *handlers.RecommendationHandler
	Personality    *handlers.PersonalityHandler
}

// New builds the HTTP router with the global middleware chain and all routes
func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Health checks and metrics
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Knowledge store access
	r.Post("/api/v1/query", h.Query.Ask)
	r.Post("/api/v1/sparql", h.Query.Execute)
	r.Post("/api/v1/contribution", h.Contribution.Create)

	// Single-destination recommendations
	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Get("/profiles", h.Recommendation.Profiles)
		r.Post("/generate", h.Recommendation.Generate)
		r.Get("/activities/{profile}", h.Recommendation.Activities)
		r.Get("/accommodations/{profile}", h.Recommendation.Accommodations)
		r.Get("/transports", h.Recommendation.Transports)
		r.Post("/carbon-calculator", h.Recommendation.CarbonCalculator)
		r.Post("/compare", h.Recommendation.Compare)
	})

	// Personality quiz and trip packages
	r.Route("/api/v1/personality", func(r chi.Router) {
		r.Get("/questions", h.Personality.Questions)
		r.Post("/analyze", h.Personality.Analyze)
		r.Post("/package", h.Personality.GeneratePackage)
	})

	return r
}
