package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/events"
	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
	domainevents "github.com/ghuser/ecopoints/services/points/domain/events"
	"github.com/ghuser/ecopoints/services/points/domain/models"
	"github.com/ghuser/ecopoints/services/points/infrastructure/persistence/postgres/db"
)

// PointRepository implements repositories.PointRepository against PostgreSQL.
type PointRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewPointRepository returns a PointRepository backed by the given pool. When
// bus is non-nil, Create and Delete publish lifecycle events in the same
// transaction as the write.
func NewPointRepository(database *database.Database, bus *events.EventBus) *PointRepository {
	return &PointRepository{db: database, bus: bus}
}

// Create inserts the point and its associations atomically. A reference to an
// item id missing from the catalog fails with ErrUnknownItem and leaves no rows.
func (r *PointRepository) Create(ctx context.Context, p *models.Point, itemIDs models.ItemIDs) (int64, error) {
	var id int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		var err error
		id, err = q.InsertPoint(ctx, db.InsertPointParams{
			Name:      p.Name,
			Email:     p.Email,
			Whatsapp:  p.Whatsapp,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			City:      p.City,
			Uf:        p.UF.String(),
			Image:     p.Image,
		})
		if err != nil {
			return fmt.Errorf("insert point: %w", err)
		}

		for _, itemID := range itemIDs {
			if err := q.InsertPointItem(ctx, db.InsertPointItemParams{PointID: id, ItemID: itemID}); err != nil {
				if database.PgErrorCode(err) == database.CodeForeignKeyViolation {
					return fmt.Errorf("%w: %w %d: %w", pointsdomain.ErrPersistenceFailed, pointsdomain.ErrUnknownItem, itemID, err)
				}
				return fmt.Errorf("insert point item %d: %w", itemID, err)
			}
		}

		if r.bus != nil {
			evt := domainevents.NewPointRegistered(id, p.City, p.UF.String(), itemIDs.Int64s())
			if err := r.bus.PublishTx(ctx, tx, domainevents.TopicPointRegistered, evt); err != nil {
				return fmt.Errorf("publish point registered: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, database.Classify(err)
	}
	return id, nil
}

// List returns the points matching f, each at most once, ordered by id.
func (r *PointRepository) List(ctx context.Context, f models.Filter) ([]models.Point, error) {
	q := db.New(r.db.DB())

	var (
		rows []db.Point
		err  error
	)
	if f.HasItems() {
		rows, err = q.ListPointsByLocationAndItems(ctx, db.ListPointsByLocationAndItemsParams{
			City:    f.City,
			Uf:      f.UF.String(),
			ItemIds: f.ItemIDs.Int64s(),
		})
	} else {
		rows, err = q.ListPointsByLocation(ctx, db.ListPointsByLocationParams{
			City: f.City,
			Uf:   f.UF.String(),
		})
	}
	if err != nil {
		return nil, database.Classify(fmt.Errorf("query points: %w", err))
	}

	points := make([]models.Point, len(rows))
	for i, row := range rows {
		points[i] = *rowToPoint(row)
	}
	return points, nil
}

// GetByID returns the point with id, or ErrPointNotFound.
func (r *PointRepository) GetByID(ctx context.Context, id int64) (*models.Point, error) {
	row, err := db.New(r.db.DB()).GetPointByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pointsdomain.ErrPointNotFound
		}
		return nil, database.Classify(fmt.Errorf("query point: %w", err))
	}
	return rowToPoint(row), nil
}

// ItemTitles returns the titles of every item the point accepts, ordered by
// item id. A point without associations yields an empty slice.
func (r *PointRepository) ItemTitles(ctx context.Context, id int64) ([]string, error) {
	titles, err := db.New(r.db.DB()).ListItemTitlesByPointID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pointsdomain.ErrAssociationLookupFailed, database.Classify(err))
	}
	if titles == nil {
		titles = []string{}
	}
	return titles, nil
}

// Delete removes the point's associations and then the point in one
// transaction, publishing a PointDeletedEvent with it.
func (r *PointRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if _, err := q.DeletePointItems(ctx, id); err != nil {
			return fmt.Errorf("delete point items: %w", err)
		}
		n, err := q.DeletePoint(ctx, id)
		if err != nil {
			return fmt.Errorf("delete point: %w", err)
		}
		if n == 0 {
			return pointsdomain.ErrPointNotFound
		}

		if r.bus != nil {
			if err := r.bus.PublishTx(ctx, tx, domainevents.TopicPointDeleted, domainevents.NewPointDeleted(id)); err != nil {
				return fmt.Errorf("publish point deleted: %w", err)
			}
		}
		return nil
	})
	if errors.Is(err, pointsdomain.ErrPointNotFound) {
		return err
	}
	return database.Classify(err)
}

// ResetItems removes every association of point id. The point row stays.
func (r *PointRepository) ResetItems(ctx context.Context, id int64) (int64, error) {
	n, err := db.New(r.db.DB()).DeletePointItems(ctx, id)
	if err != nil {
		return 0, database.Classify(fmt.Errorf("delete point items: %w", err))
	}
	return n, nil
}

func rowToPoint(row db.Point) *models.Point {
	return &models.Point{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Whatsapp:  row.Whatsapp,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		City:      row.City,
		UF:        models.UF(row.Uf),
		Image:     row.Image,
	}
}
