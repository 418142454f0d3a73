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

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/ecopoints/docs/swagger"
	"github.com/ghuser/ecopoints/migrations/points"
	"github.com/ghuser/ecopoints/pkg/app"
	"github.com/ghuser/ecopoints/pkg/cache"
	"github.com/ghuser/ecopoints/pkg/config"
	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/events"
	"github.com/ghuser/ecopoints/pkg/httpx"
	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/pkg/migrator"
	"github.com/ghuser/ecopoints/pkg/telemetry"
	"github.com/ghuser/ecopoints/pkg/uploads"
	catalogApi "github.com/ghuser/ecopoints/services/catalog/application/api"
	pointsApi "github.com/ghuser/ecopoints/services/points/application/api"
)

// @title					Ecopoints API
// @version				1.0
// @description			Directory of recycling collection points and the waste categories they accept.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:3333
// @BasePath				/
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	if cfg.AutoMigrate {
		if err := migrator.Up(ctx, pool.DB(), points.FS, log); err != nil {
			log.Error("failed to apply migrations", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	health := httpx.HealthChecks{Database: pool, EventBus: eventBus}

	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		health.Redis = redisClient
		log.Info("redis connected")
	} else {
		log.Warn("REDIS_URL empty, read-model caching disabled")
	}

	store, err := uploads.NewDiskStore(cfg.UploadsDir)
	if err != nil {
		log.Error("failed to prepare uploads directory", "error", err, "dir", cfg.UploadsDir)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Uploads:  store,
		Images:   uploads.NewResolver(cfg.UploadsBaseURL),
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			MaxBodyBytes:       cfg.MaxUploadBytes + 1<<20, // image plus form fields
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(health))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	httpx.StaticFiles(r, "/uploads", store.Dir())
	registerRoutes(r, appConfig)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes at the root.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogApi.CatalogRoutes(r, a)
	pointsApi.PointsRoutes(r, a)
}
