package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/ecopoints/pkg/app"
	"github.com/ghuser/ecopoints/pkg/cache"
	"github.com/ghuser/ecopoints/pkg/config"
	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/events"
	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/pkg/telemetry"
	pointsvcs "github.com/ghuser/ecopoints/services/points/application/services"
	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
	pointEvents "github.com/ghuser/ecopoints/services/points/domain/events"
)

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

	log := logger.New(cfg).With("process", "worker")

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	subCtx, cancelSubs := context.WithCancel(ctx)
	if err := registerSubscribers(subCtx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		cancelSubs()
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelSubs()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// cacheMaintainer is the slice of the query service the subscribers drive.
type cacheMaintainer interface {
	Warm(ctx context.Context, id int64) error
	Evict(ctx context.Context, id int64) error
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	query := pointsvcs.New(a).Query
	handlers := map[string]func(context.Context, *message.Message) error{
		pointEvents.TopicPointRegistered: handlePointRegistered(query, a.Logger),
		pointEvents.TopicPointDeleted:    handlePointDeleted(query, a.Logger),
	}

	topics := make([]string, 0, len(handlers))
	for topic, handler := range handlers {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic, errCh)
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handlePointRegistered warms the point detail cache so the first GET
// /points/{id} is served from Redis. Handlers must be idempotent; the
// EventBus retries up to 3x on failure.
func handlePointRegistered(query cacheMaintainer, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[pointEvents.PointRegisteredEvent](msg)
		if err != nil {
			return err
		}
		if err := query.Warm(ctx, evt.PointID); err != nil {
			if errors.Is(err, pointsdomain.ErrPointNotFound) {
				// Deleted before we got here; nothing to warm.
				return nil
			}
			return err
		}
		log.InfoContext(ctx, "point cache warmed", "point_id", evt.PointID, "event_id", evt.EventID)
		return nil
	}
}

// handlePointDeleted drops the cached detail of a deleted point.
func handlePointDeleted(query cacheMaintainer, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[pointEvents.PointDeletedEvent](msg)
		if err != nil {
			return err
		}
		if err := query.Evict(ctx, evt.PointID); err != nil {
			return err
		}
		log.InfoContext(ctx, "point cache evicted", "point_id", evt.PointID, "event_id", evt.EventID)
		return nil
	}
}
