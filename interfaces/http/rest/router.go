package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	querybus "lexicon-backend/application/queries/bus"
	"lexicon-backend/infrastructure/config"
	"lexicon-backend/interfaces/http/rest/handlers"
	"lexicon-backend/interfaces/http/rest/middleware"
	pkgerrors "lexicon-backend/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg          *config.Config
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.Handler
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.Handler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:          cfg,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(rt.errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Concept endpoints: the explore route carries a static segment, so
	// it must not be shadowed by the bare {conceptID} match; chi gives
	// static segments precedence.
	router.Route("/concepts", func(r chi.Router) {
		conceptHandler := handlers.NewConceptHandler(rt.queryBus, rt.errorHandler, rt.logger)
		r.Get("/", conceptHandler.ListConcepts)
		r.Get("/explore/{conceptID}", conceptHandler.ExploreConcept)
		r.Get("/{conceptID}", conceptHandler.GetConceptByID)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests. The lexicon is seeded
// during container initialization, before the listener starts, so a
// serving process is always ready.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
