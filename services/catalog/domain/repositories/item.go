package repositories

import (
	"context"

	"github.com/ghuser/ecopoints/services/catalog/domain/models"
)

// ItemRepository is the read-only persistence interface for the catalog.
type ItemRepository interface {
	// List returns every catalog item ordered by id.
	List(ctx context.Context) ([]models.Item, error)
}
