package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/metric_converter/internal/app"
	"github.com/InQaaaaGit/metric_converter/internal/buildinfo"
	"github.com/InQaaaaGit/metric_converter/internal/config"
	"github.com/InQaaaaGit/metric_converter/internal/server"
	"go.uber.org/zap"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0"
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// Инициализация конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Инициализация логгера
	logger, err := server.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	info := buildinfo.NewInfo(buildVersion, buildDate, buildCommit)
	logger.Info("Converter service starting", info.Fields()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp(cfg, logger).Run(ctx); err != nil {
		logger.Error("Server error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
