package repositories

import (
	"context"

	"github.com/ghuser/ecopoints/services/points/domain/models"
)

// PointRepository is the persistence interface for collection points and
// their item associations.
type PointRepository interface {
	// Create inserts p and one association per id in a single transaction
	// and returns the generated id. Nothing is written on failure.
	Create(ctx context.Context, p *models.Point, itemIDs models.ItemIDs) (int64, error)
	// List returns points in f.City/f.UF accepting any of f.ItemIDs, each
	// point at most once, ordered by id.
	List(ctx context.Context, f models.Filter) ([]models.Point, error)
	// GetByID returns ErrPointNotFound when id does not exist.
	GetByID(ctx context.Context, id int64) (*models.Point, error)
	// ItemTitles returns the titles of the items point id accepts.
	ItemTitles(ctx context.Context, id int64) ([]string, error)
	// Delete removes the point and its associations. ErrPointNotFound when
	// nothing was deleted.
	Delete(ctx context.Context, id int64) error
	// ResetItems removes every association row for id and reports how many
	// were removed. The point row is untouched.
	ResetItems(ctx context.Context, id int64) (int64, error)
}
