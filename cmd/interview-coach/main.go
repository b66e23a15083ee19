package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/terra-clan/interview-coach/internal/api"
	"github.com/terra-clan/interview-coach/internal/config"
	"github.com/terra-clan/interview-coach/internal/monitor"
	"github.com/terra-clan/interview-coach/internal/questions"
	"github.com/terra-clan/interview-coach/internal/recommend"
	"github.com/terra-clan/interview-coach/internal/report"
	"github.com/terra-clan/interview-coach/internal/storage"
)

func main() {
	// Setup structured logging; the level is raised or lowered once config is loaded
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.Log.SlogLevel())

	slog.Info("starting interview-coach",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"store", cfg.Store.Backend,
		"log_level", cfg.Log.Level,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	repo, err := storage.Open(initCtx, storage.Options{
		Backend:       cfg.Store.Backend,
		PostgresDSN:   cfg.Store.DSN,
		MaxOpenConns:  cfg.Store.MaxOpenConns,
		MaxIdleConns:  cfg.Store.MaxIdleConns,
		RedisAddress:  cfg.Store.RedisAddress,
		RedisPassword: cfg.Store.RedisPassword,
		RedisDB:       cfg.Store.RedisDB,
		RedisKey:      cfg.Store.RedisKey,
	})
	if err != nil {
		slog.Error("failed to open submission store", "error", err, "backend", cfg.Store.Backend)
		os.Exit(1)
	}
	slog.Info("submission store ready", "backend", cfg.Store.Backend)

	svc, err := questions.NewService(repo)
	if err != nil {
		slog.Error("failed to create question service", "error", err)
		os.Exit(1)
	}
	reports := report.NewAggregator(repo)
	engine := recommend.NewEngine(recommend.WithLogger(logger))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start store monitor
	monitor.New(repo, cfg.Store.MonitorInterval).Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg, svc, reports, engine, repo)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := repo.Close(); err != nil {
		slog.Error("store close error", "error", err)
	}

	slog.Info("interview-coach stopped")
}
