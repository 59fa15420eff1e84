package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"icolleague/internal/config"
	"icolleague/internal/db"
	"icolleague/internal/logger"
	"icolleague/internal/metrics"
	"icolleague/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	kb, err := cfg.KnowledgeBase()
	if err != nil {
		log.Fatal("failed to load knowledge base", zap.String("file", cfg.KnowledgeFile), zap.Error(err))
	}
	log.Info("knowledge base loaded",
		zap.Int("entries", len(kb.Entries())),
		zap.String("policy", string(kb.Policy())))

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("migrations completed successfully")

	if cfg.SeedEmployees {
		n, err := database.SeedEmployees(ctx)
		if err != nil {
			log.Fatal("failed to seed employees", zap.Error(err))
		}
		if n > 0 {
			log.Info("seeded employee directory", zap.Int("employees", n))
		}
	}

	// Metrics
	recorder := metrics.NewRecorder(database, log)
	if err := recorder.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	srv := server.New(cfg, log)
	if err := srv.RegisterRoutes(ctx, server.Deps{
		DB:        database,
		Knowledge: kb,
		Recorder:  recorder,
	}); err != nil {
		log.Fatal("failed to register routes", zap.Error(err))
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	recorder.Wait()
	log.Info("server exited")
}
