package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sahayak-agent/catalog"
	"sahayak-agent/config"
	"sahayak-agent/engine"
	"sahayak-agent/locator"
	"sahayak-agent/web"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	cat := catalog.Load(cfg.CatalogPath, logger)
	loc := locator.New(cfg, logger)

	engineCfg := engine.Config{
		FuzzyThreshold:     cfg.FuzzyThreshold,
		MaxRecommendations: cfg.MaxRecommendations,
	}
	sessions := web.NewSessionRegistry(func() *engine.Engine {
		return engine.New(engineCfg, cat, loc, logger)
	}, logger)

	webServer := web.NewServer(sessions, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go sessions.StartCleanup(ctx, cfg.CleanupInterval, cfg.SessionRetentionAge)

	port := fmt.Sprintf(":%d", cfg.WebPort)
	logger.Info("Starting Sahayak intake agent", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}
