package app

import (
	"github.com/ghuser/ecopoints/pkg/cache"
	"github.com/ghuser/ecopoints/pkg/config"
	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/events"
	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/pkg/uploads"
)

// Application holds the shared infrastructure handed to every bounded
// context's route and service constructors. Everything here is created in
// main and closed there; nothing is reachable through package globals.
//
// Logging: app.Logger is trace-aware; prefer the context methods so trace_id,
// span_id and request_id are attached:
//
//	app.Logger.InfoContext(ctx, "point registered", "point_id", id)
//
// Redis and EventBus may be nil (tests, tools); services then skip caching
// and event publishing.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	Uploads  *uploads.DiskStore
	Images   uploads.Resolver
}
