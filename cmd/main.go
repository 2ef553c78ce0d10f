package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mohib75/study-syncer-server/internal/api"
	"github.com/Mohib75/study-syncer-server/internal/auth"
	"github.com/Mohib75/study-syncer-server/internal/cache"
	"github.com/Mohib75/study-syncer-server/internal/config"
	"github.com/Mohib75/study-syncer-server/internal/configs/env"
	"github.com/Mohib75/study-syncer-server/internal/infra/mongo"
	redisInfra "github.com/Mohib75/study-syncer-server/internal/infra/redis"
	"github.com/Mohib75/study-syncer-server/internal/logger"
	"github.com/Mohib75/study-syncer-server/internal/metrics"
	"github.com/Mohib75/study-syncer-server/internal/observability"
	"github.com/Mohib75/study-syncer-server/internal/payment"
	"github.com/Mohib75/study-syncer-server/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const serviceName = "study-syncer-server"

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file, continuing with system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	logger.Init(cfg.LogLevel, !cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info().Str("env", cfg.Environment).Msg("Starting StudySyncer server")

	metrics.InitPrometheus()
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metrics.Handler())
	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("port", cfg.MetricsPort).Msg("Metrics server started")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Metrics server failed to start")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.InitOpenTelemetry(ctx, serviceName, cfg.OTLPEndpoint, cfg.OTLPInsecure)
	if err != nil {
		log.Warn().Err(err).Msg("Tracing disabled")
	}

	// Connect MongoDB
	mongoClient, err := mongo.NewClient(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB client")
	}
	defer mongoClient.Close(context.Background())

	mongoRepo := repository.NewMongoRepository(mongoClient)

	// Redis only backs the count cache; run without it when unset or down
	if cfg.RedisHost != "" {
		redisClient, err := redisInfra.NewClient(ctx, cfg.RedisHost, cfg.RedisPassword, 0)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, count caching disabled")
		} else {
			defer redisClient.Close()
			mongoRepo.WithCountCache(cache.NewCountCache(redisClient.Client, cfg.CountCacheTTL))
		}
	}

	stores := api.Stores{
		Assignments: repository.NewAssignmentsRepository(mongoRepo),
		Submissions: repository.NewSubmissionsRepository(mongoRepo),
		Courses:     repository.NewCoursesRepository(mongoRepo),
		Enrollments: repository.NewEnrollmentsRepository(mongoRepo),
	}
	tokens := auth.NewTokenManager(cfg.AccessTokenSecret)
	payments := payment.NewStripeProvider(cfg.StripeSecretKey, cfg.PaymentCurrency, nil)

	router := api.SetupRoutes(cfg, tokens, stores, payments, mongoClient)
	srv := api.StartServer(observability.WrapHandler(router, serviceName), cfg.ServerPort)

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down gracefully...")

	if err := api.ShutdownServer(srv, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Error shutting down HTTP server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error shutting down metrics server")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error flushing traces")
	}

	log.Info().Msg("Shutdown complete")
}
