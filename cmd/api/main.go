package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/cache"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/database"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/handlers"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/kv"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/middleware"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/repositories"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	store := newKVStore(cfg)
	generationCache := cache.NewGenerationCache(store, cfg.Insights.CacheTTL)

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	insightRepo := repositories.NewInsightRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	ruleEngine := services.NewRuleEngine(&cfg.Insights)
	insightService := services.NewInsightService(
		transactionRepo, categoryRepo, budgetRepo, insightRepo,
		generationCache, ruleEngine, metrics, &cfg.Insights)
	batchScheduler := services.NewBatchScheduler(transactionRepo, insightService, metrics, &cfg.Scheduler)
	generationTrigger := services.NewGenerationTrigger(
		transactionRepo, generationCache, insightService, metrics, &cfg.Insights)
	rateLimiter := services.NewRateLimiter(store, &cfg.RateLimit)
	tokenService := services.NewTokenService(&cfg.JWT)
	seeder := services.NewTransactionSeeder(transactionRepo, categoryRepo)

	// Handlers
	insightHandler := handlers.NewInsightHandler(insightService, rateLimiter, metrics)
	schedulerHandler := handlers.NewSchedulerHandler(batchScheduler, cfg.Scheduler.Secret)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(seeder, generationTrigger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.RateLimit.IPPerSecond, cfg.RateLimit.IPBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	scheduler := api.Group("/scheduler")
	scheduler.GET("/monthly-insights", schedulerHandler.RunMonthlySweep)

	insights := api.Group("/insights", middleware.RequireAuth(tokenService))
	insights.GET("", insightHandler.ListInsights)
	insights.POST("/generate", insightHandler.GenerateInsights)

	if cfg.IsDevelopment() {
		dev := api.Group("/dev", middleware.RequireAuth(tokenService))
		dev.POST("/seed-transactions", devHandler.SeedTransactions)
	}

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}

// newKVStore connects to Redis when an address is configured, otherwise
// falls back to the in-process store. The fallback is fine for local
// development but not correctness-bearing across multiple instances.
func newKVStore(cfg *config.Config) kv.Store {
	if cfg.Redis.Addr == "" {
		slog.Warn("REDIS_ADDR not set, using in-memory KV store")
		return kv.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, using in-memory KV store", "error", err)
		return kv.NewMemoryStore()
	}

	slog.Info("connected to Redis", "addr", cfg.Redis.Addr)
	return kv.NewRedisStore(client)
}
