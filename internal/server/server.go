// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"

	"contentpulse/internal/config"
	"contentpulse/internal/domain/content"
	"contentpulse/internal/domain/seo"
	"contentpulse/internal/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.ServerConfig,
	plannerCfg config.PlannerConfig,
	natsConn *nats.Conn,
	analyzer seo.Analyzer,
	provider seo.SignalProvider,
	planner content.Planner,
	analysisStore handlers.AnalysisStore,
	logger *slog.Logger,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	analysisHandler := handlers.NewAnalysisHandler(analyzer, analysisStore)
	keywordHandler := handlers.NewKeywordHandler(provider)
	calendarHandler := handlers.NewCalendarHandler(planner)
	engagementHandler := handlers.NewEngagementHandler(planner)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// API version
		r.Route("/v1", func(r chi.Router) {
			// Draft analysis API
			r.Route("/analysis", func(r chi.Router) {
				r.Post("/", analysisHandler.AnalyzeDraft)
				r.Get("/", analysisHandler.ListAnalyses)
			})

			// Keyword research API
			r.Route("/keywords/{keyword}", func(r chi.Router) {
				r.Get("/", keywordHandler.GetKeywordData)
				r.Get("/suggestions", keywordHandler.GetSuggestions)
				r.Get("/competitors", keywordHandler.GetCompetitors)
			})

			// Publishing calendar API
			r.Route("/calendar", func(r chi.Router) {
				r.Post("/", calendarHandler.PlanMonth)
				r.Get("/", calendarHandler.ListItems)

				r.Route("/items/{id}", func(r chi.Router) {
					r.Get("/", calendarHandler.GetItem)
					r.Post("/status", calendarHandler.AdvanceStatus)
				})
			})

			// Engagement API
			r.Post("/engagement", engagementHandler.RecordEngagement)
		})
	})

	// WebSocket endpoint for real-time calendar events
	router.Get("/ws/calendar", handlers.CalendarWebSocketHandler(natsConn, plannerCfg.EventsTopic, logger))

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
