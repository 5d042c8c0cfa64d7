package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"trendpulse/internal/adapter/storage"
	"trendpulse/internal/config"
	"trendpulse/internal/server/handlers"
	insightService "trendpulse/internal/service/insight"
	"trendpulse/internal/service/prediction"
	"trendpulse/internal/service/social"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg config.ServerConfig,
	insightCfg config.InsightConfig,
	natsConn *nats.Conn,
	engine *insightService.Engine,
	analyzer *prediction.Analyzer,
	portfolioStore *storage.PortfolioStore,
	collector *social.TwitterCollector,
	logger *zap.Logger,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	trendHandler := handlers.NewTrendHandler(analyzer, logger)
	insightHandler := handlers.NewInsightHandler(engine, logger)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioStore, collector, logger)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Route("/v1", func(r chi.Router) {
			// AI trend analysis
			r.Route("/trends", func(r chi.Router) {
				r.Post("/analyze", trendHandler.Analyze)
				r.Get("/predictions", trendHandler.GetPredictions)
				r.Get("/quick", trendHandler.GetQuickInsights)
			})

			// Heuristic insights
			r.Route("/insights", func(r chi.Router) {
				r.Post("/generate", insightHandler.GenerateInsights)
				r.Post("/analysis", insightHandler.GenerateAnalysis)
			})

			// Stored analysis inputs
			r.Get("/portfolio", portfolioHandler.GetPortfolio)
			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", portfolioHandler.GetAccounts)
				r.Post("/refresh", portfolioHandler.RefreshAccounts)
			})
		})
	})

	// WebSocket endpoint streaming prediction events
	router.Get("/ws/trends/{userID}", handlers.TrendStreamHandler(natsConn, insightCfg.EventsTopic, logger))

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

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
