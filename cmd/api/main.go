package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"trendpulse/internal/adapter/storage"
	"trendpulse/internal/config"
	"trendpulse/internal/domain/insight"
	"trendpulse/internal/server"
	insightService "trendpulse/internal/service/insight"
	"trendpulse/internal/service/prediction"
	"trendpulse/internal/service/social"
)

func main() {
	// Load .env if present; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Initialize dependencies
	db, err := initDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	natsConn, err := initNATS(cfg.NATS, logger)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsConn.Close()

	// Initialize storage adapters
	portfolioStore := storage.NewPortfolioStore(db)
	predictionStore := storage.NewPredictionStore(db)

	// Initialize services
	engine := insightService.NewEngine(
		insightService.WeeklyHashEstimator{},
		[]insight.TrendSource{
			insightService.NewStaticTopicSource(),
			insightService.NewStaticSeasonalSource(),
		},
		logger,
		insightService.EngineConfig{
			MaxInsights: cfg.Insight.MaxInsights,
		},
	)

	analyzer := prediction.NewAnalyzer(
		repository{portfolioStore, predictionStore},
		openai.NewClient(cfg.OpenAI.APIKey),
		natsConn,
		logger,
		prediction.AnalyzerConfig{
			Model:          cfg.OpenAI.Model,
			RequestTimeout: cfg.OpenAI.RequestTimeout,
			EventsTopic:    cfg.Insight.EventsTopic,
		},
	)

	var collector *social.TwitterCollector
	if cfg.Twitter.BearerToken != "" {
		collector = social.NewTwitterCollector(cfg.Twitter.BearerToken, portfolioStore, logger)
	} else {
		logger.Warn("TWITTER_BEARER_TOKEN not set, account refresh disabled")
	}

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg.Server,
		cfg.Insight,
		natsConn,
		engine,
		analyzer,
		portfolioStore,
		collector,
		logger,
	)

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("host", cfg.Server.Host),
			zap.Int("port", cfg.Server.Port),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logger.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}

// repository combines the storage adapters into the analyzer's
// repository interface.
type repository struct {
	*storage.PortfolioStore
	*storage.PredictionStore
}

// newLogger builds the zap logger for the environment.
func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// initDatabase initializes the database connection pool.
func initDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime

	db, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return db, nil
}

// initNATS initializes the NATS connection.
func initNATS(cfg config.NATSConfig, logger *zap.Logger) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}
