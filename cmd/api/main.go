package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/fleettrack/fleettrack/internal/delivery/http"
	"github.com/fleettrack/fleettrack/internal/infrastructure/imagehost"
	"github.com/fleettrack/fleettrack/internal/pkg/config"
	"github.com/fleettrack/fleettrack/internal/pkg/database"
	"github.com/fleettrack/fleettrack/internal/pkg/jwt"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
	"github.com/fleettrack/fleettrack/internal/pkg/redis"
	"github.com/fleettrack/fleettrack/internal/repository"
	"github.com/fleettrack/fleettrack/internal/repository/cached"
	"github.com/fleettrack/fleettrack/internal/repository/postgres"
	"github.com/fleettrack/fleettrack/internal/usecase/auth"
	"github.com/fleettrack/fleettrack/internal/usecase/repair"
	"github.com/fleettrack/fleettrack/internal/usecase/signature"
	"github.com/fleettrack/fleettrack/internal/usecase/vehicle"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting FleetTrack API server", map[string]interface{}{
		"version": "1.0.0",
	})

	// =========================================================================
	// Подключение к PostgreSQL
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// =========================================================================
	// Подключение к Redis (опционально)
	// =========================================================================

	var cache *redis.Client
	if cfg.Redis.Enabled {
		cache, err = redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis is not available, caching disabled", map[string]interface{}{
				"error": err.Error(),
			})
			cache = nil
		} else {
			defer func() { _ = cache.Close() }()
			log.Info("Connected to Redis", map[string]interface{}{
				"host": cfg.Redis.Host,
				"port": cfg.Redis.Port,
			})
		}
	}

	// =========================================================================
	// Создание repositories
	// =========================================================================

	userRepo := postgres.NewUserRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	repairRepo := postgres.NewRepairRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)

	var signatureRepo repository.SignatureRepository = postgres.NewSignatureRepository(db)
	if cache != nil {
		signatureRepo = cached.NewSignatureRepository(signatureRepo, cache)
	}

	log.Info("Repositories initialized")

	// =========================================================================
	// Создание клиента хостинга изображений
	// =========================================================================

	imageClient := imagehost.NewHTTPClient(
		cfg.ImageHost.BaseURL,
		cfg.ImageHost.UploadPreset,
		cfg.ImageHost.Timeout,
	)

	if err := imageClient.Health(ctx); err != nil {
		log.Warn("Image host is not available", map[string]interface{}{
			"error": err.Error(),
			"url":   cfg.ImageHost.BaseURL,
		})
		log.Warn("Image uploads will fail until the image host is reachable")
	} else {
		log.Info("Image host is healthy", map[string]interface{}{
			"url": cfg.ImageHost.BaseURL,
		})
	}

	// =========================================================================
	// Создание JWT token service
	// =========================================================================

	tokenService := jwt.NewTokenService(
		cfg.JWT.SecretKey,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	log.Info("JWT token service initialized")

	// =========================================================================
	// Создание use case services
	// =========================================================================

	authService := auth.NewService(userRepo, refreshTokenRepo, tokenService, log)
	vehicleService := vehicle.NewService(vehicleRepo, log)
	repairService := repair.NewService(repairRepo, vehicleRepo, log)
	signatureService := signature.NewService(signatureRepo, imageClient, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// Создание HTTP handlers
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, log)
	vehicleHandler := deliveryHTTP.NewVehicleHandler(vehicleService, log)
	driverHandler := deliveryHTTP.NewDriverHandler(vehicleService, log)
	repairHandler := deliveryHTTP.NewRepairHandler(repairService, log)
	signatureHandler := deliveryHTTP.NewSignatureHandler(signatureService, log)
	uploadHandler := deliveryHTTP.NewUploadHandler(imageClient, cfg.ImageHost.MaxFileSize, log)

	log.Info("HTTP handlers initialized")

	// =========================================================================
	// Создание и настройка HTTP router
	// =========================================================================

	router := deliveryHTTP.NewRouter(
		authHandler,
		vehicleHandler,
		driverHandler,
		repairHandler,
		signatureHandler,
		uploadHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера в goroutine
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
