package main

// @title Midpoint Service API
// @version 1.0.0
// @description Сервис вычисления точки встречи для 2 или 3 городов.
// @description
// @description Основные возможности:
// @description - Прямое геокодирование названий городов
// @description - Середина (2 города) или центроид (3 города) на сфере
// @description - Обратное геокодирование центра
// @description - Граф-звезда расстояний и кратчайшие пути между городами
// @description - Экспорт результата в GeoJSON и история вычислений

// @contact.name API Support

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

	"go.uber.org/zap"

	_ "github.com/midpoint-service/docs"
	"github.com/midpoint-service/internal/config"
	httpDelivery "github.com/midpoint-service/internal/delivery/http"
	"github.com/midpoint-service/internal/delivery/http/handler"
	"github.com/midpoint-service/internal/domain/repository"
	"github.com/midpoint-service/internal/infrastructure/geocoding"
	"github.com/midpoint-service/internal/pkg/logger"
	"github.com/midpoint-service/internal/repository/cache"
	"github.com/midpoint-service/internal/repository/memory"
	"github.com/midpoint-service/internal/usecase"
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

	log.Info("Starting Midpoint Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("geocoding_url", cfg.Geocoding.BaseURL),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	if cfg.Geocoding.APIToken == "" {
		log.Warn("GEOCODING_API_TOKEN is not set, every midpoint request will fail with MISSING_CREDENTIAL")
	}

	// 3. Connect to Redis (optional)
	var (
		cacheRepo   repository.CacheRepository
		redisClient *cache.Redis
		cacheHealth httpDelivery.HealthChecker
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		cacheHealth = redisClient
	}

	// 4. Initialize Repositories
	geocoder := geocoding.NewGeocodingClient(&cfg.Geocoding, log)
	historyRepo := memory.NewHistoryRepository()

	log.Info("Repositories initialized")

	// 5. Initialize Use Cases
	midpointUC := usecase.NewMidpointUseCase(
		geocoder,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)
	historyUC := usecase.NewHistoryUseCase(historyRepo, log, cfg.History.DefaultLimit)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers and Server
	midpointHandler := handler.NewMidpointHandler(midpointUC, historyUC, log)
	server := httpDelivery.NewServer(cfg, log, midpointHandler, cacheHealth)

	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
