package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hantzord/yolov8-smartphone-cheating-detection/app"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/config"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/debug"
	"github.com/hantzord/yolov8-smartphone-cheating-detection/domain/detect"
)

const configPath = "config.json"

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		// Defaults still apply; report and continue.
		NewLogger(slog.LevelInfo).Warn("config load failed, using defaults", "path", configPath, "error", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	if cfg.Debug {
		debug.StartMemLogger(2*time.Second, logger)
		debug.StartGoroutineLogger(time.Second, logger)
	}

	// An unreachable inference backend is fatal: nothing can be detected
	// without it.
	detector, err := detect.NewRemoteDetector(cfg.DetectionEndpoint, logger)
	if err != nil {
		logger.Error("inference backend unavailable", "endpoint", cfg.DetectionEndpoint, "error", err)
		os.Exit(1)
	}

	container := app.BuildContainer(cfg, logger, detector, configPath)
	application := app.NewApp("Smartphone Monitor", 800, 600, container)
	application.Start()
}
