// Package api serves the calculators, the food log and the saved history
// over a local JSON HTTP API.
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
)

// HealthChecker reports whether the backing store is usable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server holds the services the handlers call into.
type Server struct {
	metrics  *metrics.Service
	premium  *premium.Service
	calories *calories.Service
	health   HealthChecker
	profile  config.ProfileConfig
	version  string
}

// Deps are the dependencies of a Server.
type Deps struct {
	Metrics  *metrics.Service
	Premium  *premium.Service
	Calories *calories.Service
	Health   HealthChecker
	// Profile fills enum fields a metrics request leaves empty.
	Profile config.ProfileConfig
	Version string
}

// New creates a Server.
func New(d Deps) *Server {
	return &Server{
		metrics:  d.Metrics,
		premium:  d.Premium,
		calories: d.Calories,
		health:   d.Health,
		profile:  d.Profile,
		version:  d.Version,
	}
}

// Routes returns the API router without middleware.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusNotFound, "no such endpoint")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health/metrics", s.handleMetrics).Methods("POST")

	api.HandleFunc("/insurance/premium", s.handlePremium).Methods("POST")
	api.HandleFunc("/insurance/terms", s.handleTerms).Methods("GET")
	api.HandleFunc("/insurance/tiers", s.handleTiers).Methods("GET")

	api.HandleFunc("/foods", s.handleFoods).Methods("GET")
	api.HandleFunc("/foods/quick", s.handleQuickFoods).Methods("GET")

	api.HandleFunc("/calories", s.handleDailySummary).Methods("GET")
	api.HandleFunc("/calories", s.handleAddEntry).Methods("POST")
	api.HandleFunc("/calories", s.handleClearDay).Methods("DELETE")
	api.HandleFunc("/calories/week", s.handleWeek).Methods("GET")
	api.HandleFunc("/calories/{id}", s.handleRemoveEntry).Methods("DELETE")

	api.HandleFunc("/history/assessments", s.handleListAssessments).Methods("GET")
	api.HandleFunc("/history/assessments", s.handleClearAssessments).Methods("DELETE")
	api.HandleFunc("/history/assessments/{id}", s.handleGetAssessment).Methods("GET")
	api.HandleFunc("/history/assessments/{id}", s.handleDeleteAssessment).Methods("DELETE")
	api.HandleFunc("/history/quotes", s.handleListQuotes).Methods("GET")
	api.HandleFunc("/history/quotes", s.handleClearQuotes).Methods("DELETE")
	api.HandleFunc("/history/quotes/{id}", s.handleGetQuote).Methods("GET")
	api.HandleFunc("/history/quotes/{id}", s.handleDeleteQuote).Methods("DELETE")

	return r
}

// Handler returns the router wrapped in CORS, logging and panic recovery.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(WithLogging(WithRecovery(s.Routes())))
}

// NewHTTPServer creates an http.Server for cfg. An empty addr uses cfg.ListenAddr.
func (s *Server) NewHTTPServer(cfg config.ServerConfig, addr string) *http.Server {
	if addr == "" {
		addr = cfg.ListenAddr
	}
	return &http.Server{
		Addr:         addr,
		Handler:      s.Handler(cfg.AllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "version": s.version}
	if s.health != nil {
		if err := s.health.HealthCheck(r.Context()); err != nil {
			status["status"] = "unavailable"
			status["error"] = err.Error()
			JSONResponse(w, http.StatusServiceUnavailable, status)
			return
		}
	}
	JSONResponse(w, http.StatusOK, status)
}
