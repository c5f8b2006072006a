package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sgac_app_go/config"
	"sgac_app_go/db"
	"sgac_app_go/handlers"
	"sgac_app_go/logger"
	"sgac_app_go/middleware"
	"sgac_app_go/models"
	"sgac_app_go/services"
	"sgac_app_go/services/jobs"
	"sgac_app_go/validation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.Init(cfg.LogLevel, cfg.Environment, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer l.Sync()

	for _, warning := range cfg.Warnings {
		l.Warn(warning)
	}

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		l.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(models.All()...); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}

	if _, err := services.SeedIndicators(db.DB); err != nil {
		l.Fatal("Failed to seed evaluation indicators", zap.Error(err))
	}
	if err := services.SeedAdminFromEnv(db.DB); err != nil {
		l.Error("Failed to seed admin user", zap.Error(err))
	}

	services.InitializeStorage(cfg)

	// Revoked tokens live in redis when available, in the database otherwise
	var revocations services.RevocationStore = services.NewDBRevocationStore(db.DB)
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := services.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			l.Warn("Redis unavailable, keeping revoked tokens in the database", zap.Error(err))
		} else {
			defer client.Close()
			revocations = services.NewRedisRevocationStore(client)
			l.Info("Revoked tokens stored in redis")
		}
	}
	services.InitAuth(services.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL), revocations)
	services.InitSecurityMonitor()

	if cfg.AMQPURL != "" {
		publisher, err := services.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			l.Warn("AMQP unavailable, change events disabled", zap.Error(err))
		} else {
			services.Changes = publisher
			defer publisher.Close()
			l.Info("Publishing change events", zap.String("exchange", services.ChangeExchange))
		}
	}

	scheduler, err := jobs.StartScheduler(revocations)
	if err != nil {
		l.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	e.Validator = validation.NewValidator()

	// Middleware
	e.Use(echomiddleware.RequestID())
	e.Use(logger.RequestLogger(l))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Metrics())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	handlers.RegisterRoutes(e, cfg)

	// Start server
	go func() {
		l.Info("Server starting", zap.String("port", cfg.ServerPort), zap.Bool("auth_required", cfg.AuthRequired))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down")
	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}

	// Deferred closes of the database and the publisher run after this
	if err := services.WaitForAuditWrites(ctx); err != nil {
		l.Warn("Audit writes still pending at shutdown", zap.Error(err))
	}
}
