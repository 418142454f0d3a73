package postgres

import (
	"context"
	"fmt"

	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/services/catalog/domain/models"
	"github.com/ghuser/ecopoints/services/catalog/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by the given pool.
func NewItemRepository(database *database.Database) *ItemRepository {
	return &ItemRepository{db: database}
}

// List returns every catalog item ordered by id.
func (r *ItemRepository) List(ctx context.Context) ([]models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItems(ctx)
	if err != nil {
		return nil, database.Classify(fmt.Errorf("query items: %w", err))
	}
	items := make([]models.Item, len(rows))
	for i, row := range rows {
		items[i] = models.Item{ID: row.ID, Title: row.Title, Image: row.Image}
	}
	return items, nil
}
