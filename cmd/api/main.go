package main

// @title AquaSentinel API
// @version 1.0.0
// @description Сервис мониторинга загрязнения воды. Предоставляет API для карты метрик загрязнения, отчётов сообщества, AI-прогнозов риска, каталога организаций-респондентов и диалогового ассистента.
// @description
// @description Основные возможности:
// @description - Метрики загрязнения с классификацией риска для маркеров карты
// @description - Приём и нормализация отчётов сообщества
// @description - Прогнозы риска с визуальными стилями
// @description - Организации с расстоянием от пользователя
// @description - Rule-based ассистент с шаблонными ответами

// @contact.name API Support
// @contact.email support@aquasentinel.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aquasentinel/docs/swagger"
	"github.com/aquasentinel/internal/assistant"
	"github.com/aquasentinel/internal/config"
	httpDelivery "github.com/aquasentinel/internal/delivery/http"
	"github.com/aquasentinel/internal/delivery/http/handler"
	"github.com/aquasentinel/internal/pkg/logger"
	"github.com/aquasentinel/internal/repository/cache"
	"github.com/aquasentinel/internal/repository/postgres"
	redisRepo "github.com/aquasentinel/internal/repository/redis"
	"github.com/aquasentinel/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting AquaSentinel API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	metricRepo := postgres.NewMetricRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	predictionRepo := postgres.NewPredictionRepository(db)
	orgRepo := postgres.NewOrganizationRepository(db)

	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	metricUC := usecase.NewMetricUseCase(
		metricRepo,
		cacheRepo,
		log,
		cfg.Cache.MetricsCacheTTL,
	)

	reportUC := usecase.NewReportUseCase(
		reportRepo,
		streamRepo,
		log,
	)

	predictionUC := usecase.NewPredictionUseCase(
		predictionRepo,
		cacheRepo,
		log,
		cfg.Cache.PredictionsCacheTTL,
	)

	orgUC := usecase.NewOrganizationUseCase(
		orgRepo,
		log,
		cfg.Geo.DefaultLat,
		cfg.Geo.DefaultLng,
	)

	assistantUC := usecase.NewAssistantUseCase(assistant.NewRouter(), log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	metricHandler := handler.NewMetricHandler(metricUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	predictionHandler := handler.NewPredictionHandler(predictionUC, log)
	organizationHandler := handler.NewOrganizationHandler(orgUC, log)
	assistantHandler := handler.NewAssistantHandler(assistantUC, log)
	preferencesHandler := handler.NewPreferencesHandler(cacheRepo, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		metricHandler,
		reportHandler,
		predictionHandler,
		organizationHandler,
		assistantHandler,
		preferencesHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Close database connection
	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
