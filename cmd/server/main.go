package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firsthome/affordability-service/internal/application/usecase"
	"github.com/firsthome/affordability-service/internal/domain/port"
	"github.com/firsthome/affordability-service/internal/domain/service"
	"github.com/firsthome/affordability-service/internal/infrastructure/adapter"
	"github.com/firsthome/affordability-service/internal/infrastructure/cache"
	"github.com/firsthome/affordability-service/internal/infrastructure/config"
	"github.com/firsthome/affordability-service/internal/infrastructure/messaging"
	pgRepo "github.com/firsthome/affordability-service/internal/infrastructure/persistence/postgres"
	"github.com/firsthome/affordability-service/internal/observability"
	grpcPresentation "github.com/firsthome/affordability-service/internal/presentation/grpc"
	"github.com/firsthome/affordability-service/internal/presentation/rest"
)

func main() {
	cfg := config.Load()
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting affordability service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	// --- Database -----------------------------------------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// --- Cache --------------------------------------------------------------
	redisCache := cache.NewRedisCache(cfg.Redis)
	defer redisCache.Close() //nolint:errcheck
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, rate and tax caching disabled", "error", err)
	}

	// --- Infrastructure adapters -------------------------------------------
	scenarioRepo := pgRepo.NewScenarioRepo(pool)
	publisher := messaging.NewKafkaEventPublisher(cfg.Kafka, logger)
	defer publisher.Close() //nolint:errcheck

	scraper := adapter.NewScrapedRateProvider(cfg.RateSource.ScrapeURL, logger)
	var aiEstimator port.RateProvider
	if cfg.RateSource.OpenAIAPIKey != "" {
		aiEstimator = adapter.NewAIRateEstimator(cfg.RateSource.OpenAIAPIKey)
	}
	rates := adapter.NewCachedRateProvider(
		adapter.NewCompositeRateProvider(scraper, aiEstimator, cfg.RateSource.DefaultRate, logger),
		redisCache,
	)
	taxes := adapter.NewCachedTaxEstimator(adapter.NewRegionalTaxEstimator(), redisCache)
	insurance := adapter.NewRiskAdjustedInsuranceEstimator()

	engine := service.NewBorrowingPowerEngine()

	// --- Use cases ----------------------------------------------------------
	calculateUC := usecase.NewCalculateAffordabilityUseCase(rates, taxes, insurance, engine, logger)
	saveUC := usecase.NewSaveScenarioUseCase(calculateUC, scenarioRepo, publisher)
	getUC := usecase.NewGetScenarioUseCase(scenarioRepo)
	listUC := usecase.NewListScenariosUseCase(scenarioRepo)
	deleteUC := usecase.NewDeleteScenarioUseCase(scenarioRepo, publisher)

	// --- Metrics ------------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(ctx) //nolint:errcheck

	// --- gRPC server --------------------------------------------------------
	grpcHandler := grpcPresentation.NewAffordabilityHandler(calculateUC, saveUC, getUC, listUC, deleteUC)
	grpcServer := grpcPresentation.NewServer(grpcHandler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP server --------------------------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"postgres": pool.Ping,
		"redis":    redisCache.Ping,
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	restHandler := rest.NewAffordabilityHandler(calculateUC, saveUC, getUC, listUC, deleteUC, logger)
	restHandler.RegisterRoutes(mux)

	limiter := rest.NewRateLimiter(20, 40)
	defer limiter.Stop()
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: rest.RequestLogger(logger, limiter.Middleware(mux)),
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("affordability service stopped")
}
