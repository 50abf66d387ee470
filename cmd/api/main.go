package main

import (
	"context"
	"log"
	"time"

	"loopa-api/internal/core/cache"
	"loopa-api/internal/core/config"
	"loopa-api/internal/core/logger"
	"loopa-api/internal/core/server"
	earningshandler "loopa-api/internal/features/earnings/handler"
	earningsservice "loopa-api/internal/features/earnings/service"
	orderadapter "loopa-api/internal/features/orders/adapters"
	orderhandler "loopa-api/internal/features/orders/handler"
	orderservice "loopa-api/internal/features/orders/service"
	spotlightadapter "loopa-api/internal/features/spotlight/adapters"
	spotlighthandler "loopa-api/internal/features/spotlight/handler"
	spotlightservice "loopa-api/internal/features/spotlight/service"

	"go.uber.org/zap"
)

// @title Loopa API
// @version 1.0
// @description Storefront API for Loopa: order lookup, creator earnings statistics and spotlight promotions.
// @contact.name API Support
// @contact.email support@loopa.shop
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Redis cache
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Storefront Adapter and run Health Check
	storeAdapter := orderadapter.NewStorefrontAdapter(cfg.Storefront)
	if err := storeAdapter.HealthCheck(); err != nil {
		l.Fatal("Storefront Health Check Failed", zap.Error(err))
	}
	l.Info("Storefront connection verified")

	// Initialize Order Service & Handler
	orderService := orderservice.NewOrderService(storeAdapter)
	orderHandler := orderhandler.NewOrderHandler(orderService)

	// Initialize Earnings Service & Handler
	policy := cfg.Payout.Policy()
	statsTTL := time.Duration(cfg.Payout.StatsCacheTTL) * time.Second
	earningsService := earningsservice.NewEarningsService(storeAdapter, redisCache, policy, statsTTL)
	earningsHandler := earningshandler.NewEarningsHandler(earningsService)

	// Initialize Spotlight Repository, Service & Handler
	spotlightRepo := spotlightadapter.NewRedisSpotlightRepository(redisCache)
	spotlightService := spotlightservice.NewSpotlightService(spotlightRepo)
	spotlightHandler := spotlighthandler.NewSpotlightHandler(spotlightService)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/orders/:id", orderHandler.GetOrder)
	srv.App.Get("/stats/earnings", earningsHandler.GetOverallStats)
	srv.App.Get("/stats/designs", earningsHandler.GetDesignStats)
	srv.App.Post("/spotlight", spotlightHandler.SetSpotlight)
	srv.App.Get("/spotlight", spotlightHandler.GetSpotlight)
	srv.App.Delete("/spotlight", spotlightHandler.RemoveSpotlight)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
