package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/conjam/conjam-api-go/internal/app"
	"github.com/conjam/conjam-api-go/internal/config"
	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/health"
	"github.com/conjam/conjam-api-go/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.EnableFileLoggingWithLevel(util.LogConfig{
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, "conjam-api.log", cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	health.Init(cfg.Version)

	logger.Info("conjam_api_starting",
		slog.String("version", cfg.Version),
		slog.String("log_level", cfg.Logging.Level),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), constants.AppTimeout.Build)
	runtime, err := app.BuildRuntime(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("runtime_build_failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := runtime.Run(); err != nil {
		logger.Error("runtime_stopped_with_error", slog.Any("error", err))
		os.Exit(1)
	}
}
