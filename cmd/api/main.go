// cmd/api/main.go

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"contentpulse/internal/adapter/storage"
	"contentpulse/internal/config"
	"contentpulse/internal/domain/content"
	"contentpulse/internal/logger"
	"contentpulse/internal/server"
	"contentpulse/internal/service/analysis"
	"contentpulse/internal/service/planner"
	signalService "contentpulse/internal/service/signal"
)

func main() {
	// Load environment variables from .env file if present
	godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("contentpulse-api")

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Initialize dependencies
	db, err := initDatabase(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	natsConn, err := initNATS(cfg.NATS, log)
	if err != nil {
		log.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer natsConn.Close()

	// Initialize storage adapters
	contentStore := storage.NewContentStore(db)
	historyStore := storage.NewHistoryStore(db)
	analysisStore := storage.NewAnalysisStore(db)

	// Initialize the external signal provider
	provider := signalService.NewProvider(cfg.Signal, log)

	// Initialize the analysis orchestrator
	orchestrator := analysis.NewOrchestrator(provider, log, analysis.OrchestratorConfig{
		ExternalTimeout: cfg.Analysis.ExternalTimeout,
	})

	// Initialize the calendar planner
	calendarPlanner := planner.NewCalendarPlanner(
		contentStore,
		historyStore,
		natsConn,
		log,
		planner.CalendarPlannerConfig{
			EventsTopic:   cfg.Planner.EventsTopic,
			WindowMonths:  cfg.Planner.WindowMonths,
			CheckInterval: cfg.Planner.CheckInterval,
		},
	)

	// Log generated calendars for operational visibility
	calendarPlanner.RegisterPlanHandler(func(items []content.Item) error {
		log.Info("calendar plan ready", "items", len(items))
		return nil
	})

	// Start the background planning cycle
	if err := calendarPlanner.Start(ctx); err != nil {
		log.Error("failed to start calendar planner", "error", err)
		os.Exit(1)
	}

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg.Server,
		cfg.Planner,
		natsConn,
		orchestrator,
		provider,
		calendarPlanner,
		analysisStore,
		log,
	)

	// Start HTTP server
	go func() {
		log.Info("starting HTTP server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	log.Info("shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Graceful shutdown
	log.Info("shutting down services")

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown error", "error", err)
	}

	if err := calendarPlanner.Stop(shutdownCtx); err != nil {
		log.Warn("calendar planner shutdown error", "error", err)
	}

	log.Info("shutdown complete")
}

// Initialize database connection
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

	// Test connection
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return db, nil
}

// Initialize NATS connection
func initNATS(cfg config.NATSConfig, log *slog.Logger) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}
