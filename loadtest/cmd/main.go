package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Murtaza813/Takhteet/loadtest/internal/driver"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := driver.Config{
		BaseURL:     envOrDefault("LOADTEST_BASE_URL", "http://localhost:8080"),
		RunID:       envOrDefault("LOADTEST_RUN_ID", "local"),
		Requests:    envIntOrDefault("LOADTEST_REQUESTS", 100),
		Concurrency: envIntOrDefault("LOADTEST_CONCURRENCY", 4),
	}

	slog.Info("starting load run",
		slog.String("base_url", cfg.BaseURL),
		slog.String("run_id", cfg.RunID),
		slog.Int("requests", cfg.Requests),
		slog.Int("concurrency", cfg.Concurrency),
	)

	result, err := driver.Run(ctx, cfg)
	if err != nil {
		slog.Error("load run aborted", slog.String("error", err.Error()))
		return 1
	}

	for status, count := range result.StatusCounts {
		slog.Info("status count", slog.Int("status", status), slog.Int("count", count))
	}
	slog.Info("load run complete",
		slog.Int("requests", result.Requests),
		slog.Int("errors", result.Errors),
		slog.Duration("min_latency", result.MinLatency),
		slog.Duration("avg_latency", result.AvgLatency),
		slog.Duration("max_latency", result.MaxLatency),
	)
	return 0
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
