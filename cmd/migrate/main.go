package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/ecopoints/migrations/points"
	"github.com/ghuser/ecopoints/pkg/config"
	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, points.FS, log); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}
}
