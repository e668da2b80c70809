package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/Murtaza813/Takhteet/internal/config"
	"github.com/Murtaza813/Takhteet/internal/handler"
	"github.com/Murtaza813/Takhteet/internal/health"
	"github.com/Murtaza813/Takhteet/internal/infra/repository"
	"github.com/Murtaza813/Takhteet/internal/infra/schedulerecorder"
	"github.com/Murtaza813/Takhteet/internal/observability/metrics"
	"github.com/Murtaza813/Takhteet/internal/observability/middleware"
	"github.com/Murtaza813/Takhteet/internal/service/schedule"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := cfg.Redis.Validate(); err != nil {
		slog.Error("redis configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		slog.Error("failed to initialize schedule metrics", slog.String("error", err.Error()))
		return 1
	}

	// Generation result recorder (InfluxDB for local, BigQuery for gcloud)
	resultRecorderCfg := schedulerecorder.LoadConfig()
	resultRecorder, err := schedulerecorder.NewRecorder(ctx, resultRecorderCfg)
	if err != nil {
		slog.Error("failed to initialize generation result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close generation result recorder", slog.String("error", err.Error()))
		}
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	selectionStore := repository.NewSelectionRepository(redisClient)
	scheduleService := schedule.NewService(cfg.Schedule, scheduleMetrics)

	scheduleHandler := handler.NewScheduleHandler(scheduleService, selectionStore, resultRecorder)
	selectionHandler := handler.NewSelectionHandler(selectionStore)
	contentHandler := handler.NewContentHandler()

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/schedule", scheduleHandler.HandleGenerate)
		v1.POST("/revision/selection/toggle", selectionHandler.HandleToggle)
		v1.GET("/revision/selection", selectionHandler.HandleGet)
		v1.GET("/content/juz", contentHandler.HandleJuz)
		v1.GET("/content/sections", contentHandler.HandleSections)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("forward_review_window", cfg.Schedule.ForwardReviewWindowPages),
			slog.Int("backward_review_window", cfg.Schedule.BackwardReviewWindowPages),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
