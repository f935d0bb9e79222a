package routes

import (
	"net/http"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/api/handlers"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/api/middleware"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/observability"
)

const metricsPath = "/metrics"

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	searchHandler    *handlers.SearchHandler
	healthHandler    *handlers.HealthHandler
	analyticsHandler *handlers.AnalyticsHandler

	metrics        *observability.Metrics
	metricsHandler http.Handler
	allowedOrigins []string
}

// NewRouter creates a new router. metrics and metricsHandler may be nil.
func NewRouter(
	searchHandler *handlers.SearchHandler,
	healthHandler *handlers.HealthHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	metrics *observability.Metrics,
	metricsHandler http.Handler,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		searchHandler:    searchHandler,
		healthHandler:    healthHandler,
		analyticsHandler: analyticsHandler,
		metrics:          metrics,
		metricsHandler:   metricsHandler,
		allowedOrigins:   allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /{$}", r.healthHandler.Root)
	r.mux.HandleFunc("GET /health", r.healthHandler.Health)

	r.mux.HandleFunc("POST /api/search", r.searchHandler.Search)

	r.mux.HandleFunc("GET /api/analytics/zero-result-queries", r.analyticsHandler.GetZeroResultQueries)

	if r.metricsHandler != nil {
		r.mux.Handle("GET "+metricsPath, r.metricsHandler)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.Compression(metricsPath)(handler)

	// CORS wraps everything so headers are set on every response
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
