package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/heru-ai/harmony/internal/assessment"
	"github.com/heru-ai/harmony/internal/domain"
	"github.com/heru-ai/harmony/internal/screen"
)

// Server represents the HTTP API server.
type Server struct {
	router  *chi.Mux
	handler *Handler
	server  *http.Server
	config  domain.ServerConfig
}

// NewServer creates a new API server.
func NewServer(cfg domain.ServerConfig, repo domain.Repository, cache domain.Cache, bus domain.EventBus, pipeline *assessment.Pipeline, screenEngine *screen.Engine, version string) *Server {
	handler := NewHandler(repo, cache, bus, pipeline, screenEngine, version)
	router := chi.NewRouter()

	// Global middleware stack
	router.Use(CORSMiddleware)         // CORS for browser clients
	router.Use(RecoverMiddleware)      // Recover from panics
	router.Use(TracingMiddleware)      // OpenTelemetry tracing
	router.Use(LoggingMiddleware)      // Request logging
	router.Use(middleware.RealIP)      // Extract real IP
	router.Use(middleware.Compress(5)) // Gzip compression

	// Health endpoints (no tenant required)
	router.Get("/health", handler.Health)
	router.Get("/ready", handler.Ready)

	// API routes (tenant required)
	router.Route("/", func(r chi.Router) {
		r.Use(TenantMiddleware)

		// Assessment pipeline
		r.Post("/assess", handler.Assess)

		// Assessment retrieval
		r.Get("/assessments/{id}", handler.GetAssessment)
		r.Get("/assessments/{id}/report", handler.GetAssessmentReport)
		r.Get("/clients/{id}/assessments", handler.ListClientAssessments)

		// Product catalog management
		r.Get("/products", handler.ListProducts)
		r.Get("/products/{id}", handler.GetProduct)
		r.Post("/products", handler.CreateProduct)
		r.Post("/products/reload", handler.ReloadProducts)

		// Archetype reference data
		r.Get("/archetypes", handler.ListArchetypes)
		r.Get("/archetypes/{id}", handler.GetArchetype)

		// Screening rule management
		r.Get("/screens", handler.ListScreenRules)
		r.Get("/screens/{id}", handler.GetScreenRule)
		r.Post("/screens", handler.CreateScreenRule)
		r.Post("/screens/reload", handler.ReloadScreenRules)
	})

	return &Server{
		router:  router,
		handler: handler,
		config:  cfg,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the Chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Handler returns the handler for testing.
func (s *Server) Handler() *Handler {
	return s.handler
}
