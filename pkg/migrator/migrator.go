package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ghuser/ecopoints/pkg/logger"
)

// RunMigrations applies every pending goose migration in files against dbURL
// and logs each applied version.
func RunMigrations(ctx context.Context, dbURL string, files fs.FS, log logger.Logger) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return Up(ctx, db, files, log)
}

// Up applies pending migrations on an open connection.
func Up(ctx context.Context, db *sql.DB, files fs.FS, log logger.Logger) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	for _, res := range results {
		log.Info("migration applied",
			"version", res.Source.Version,
			"path", res.Source.Path,
			"duration_ms", res.Duration.Milliseconds(),
		)
	}
	if len(results) == 0 {
		log.Info("migrations up to date")
	}
	return nil
}
