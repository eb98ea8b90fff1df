package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ruslingo/ruslingo/internal/config"
	"github.com/ruslingo/ruslingo/internal/delivery/httpapi"
	"github.com/ruslingo/ruslingo/internal/infra/postgres"
	"github.com/ruslingo/ruslingo/internal/logger"
	"github.com/ruslingo/ruslingo/internal/notifier"
	"github.com/ruslingo/ruslingo/internal/repository"
	"github.com/ruslingo/ruslingo/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zapLogger.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Initialize repositories and services.
	lessonRepo, err := repository.NewLessonRepository(cfg.LessonsDir)
	if err != nil {
		zapLogger.Fatal("failed to open lessons directory", zap.Error(err))
	}

	profileRepo := repository.NewProfileRepository(pool)
	analyticsRepo := repository.NewAnalyticsRepository(pool)

	schedulerService := service.NewSchedulerService(analyticsRepo)
	priorityService := service.NewPriorityService(lessonRepo, analyticsRepo)
	reviewService := service.NewReviewService(lessonRepo, analyticsRepo, priorityService)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	lessonService := service.NewLessonService(lessonRepo, profileRepo)
	profileService := service.NewProfileService(profileRepo)

	if cfg.Reminder.Enabled {
		reviewNotifier, err := notifier.NewTelegramNotifier(cfg.Reminder.TelegramAPIToken)
		if err != nil {
			zapLogger.Fatal("failed to create telegram notifier", zap.Error(err))
		}

		reminderService := service.NewReminderService(
			schedulerService,
			profileRepo,
			reviewNotifier,
			cfg.Reminder.Schedule,
			zapLogger,
		)
		go reminderService.Start(ctx)
	}

	handler := httpapi.NewHandler(
		zapLogger,
		lessonService,
		schedulerService,
		priorityService,
		reviewService,
		analyticsService,
		profileService,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	handler.Register(e)

	go func() {
		zapLogger.Info("http server started", zap.String("addr", cfg.HTTP.Addr))
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("http server shutdown", zap.Error(err))
	}
}
