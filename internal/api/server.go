package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/terra-clan/interview-coach/internal/config"
	"github.com/terra-clan/interview-coach/internal/questions"
	"github.com/terra-clan/interview-coach/internal/recommend"
	"github.com/terra-clan/interview-coach/internal/report"
	"github.com/terra-clan/interview-coach/internal/storage"
)

// Server represents the HTTP API server
type Server struct {
	config    *config.Config
	router    *chi.Mux
	questions *questions.Service
	reports   *report.Aggregator
	engine    *recommend.Engine
	repo      storage.Repository
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	svc *questions.Service,
	reports *report.Aggregator,
	engine *recommend.Engine,
	repo storage.Repository,
) *Server {
	s := &Server{
		config:    cfg,
		questions: svc,
		reports:   reports,
		engine:    engine,
		repo:      repo,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(metricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.config.Server.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health and metrics stay outside the rate limit
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(s.config.RateLimit))

		r.Route("/questions", func(r chi.Router) {
			r.Get("/by-role/{role}", s.handleListByRole)
			r.Get("/report", s.handleBuildReport)
			r.Post("/follow-up", s.handleFollowUps)
			r.Get("/solutions", s.handleListSolutions)

			r.Get("/{id}", s.handleGetQuestion)
			r.Post("/{id}", s.handleSubmitAnswer)
		})
	})

	s.router = r
}
