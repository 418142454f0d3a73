package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/ecopoints/pkg/cache"
	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/services/points/domain/models"
	"github.com/ghuser/ecopoints/services/points/domain/repositories"
)

// QueryService answers filtered listings and point detail lookups. Details
// are read through the Redis cache when one is configured.
type QueryService struct {
	repo    repositories.PointRepository
	cache   *pkgcache.PointCache
	log     logger.Logger
	timeout time.Duration
}

// NewQueryService returns a QueryService. cache may be nil.
func NewQueryService(repo repositories.PointRepository, cache *pkgcache.PointCache, log logger.Logger, storeTimeout time.Duration) *QueryService {
	return &QueryService{repo: repo, cache: cache, log: log, timeout: storeTimeout}
}

// List returns the points matching f ordered by id. No match is an empty
// slice, not an error.
func (s *QueryService) List(ctx context.Context, f models.Filter) ([]models.Point, error) {
	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	points, err := s.repo.List(storeCtx, f)
	if err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}
	if points == nil {
		points = []models.Point{}
	}
	return points, nil
}

// Detail returns a point and the titles of the items it accepts:
//  1. Check Redis first.
//  2. On miss (or cache error) load point and titles from Postgres.
//  3. Store the result for later lookups.
func (s *QueryService) Detail(ctx context.Context, id int64) (*models.PointDetail, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			return fromCachedPoint(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "point cache read failed", "point_id", id, "error", err)
		}
	}

	detail, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, detail)
	return detail, nil
}

// Warm loads a point from Postgres and stores it in the cache, replacing any
// cached copy. It is a no-op without a cache.
func (s *QueryService) Warm(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	detail, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, toCachedPoint(detail)); err != nil {
		return fmt.Errorf("warm point %d: %w", id, err)
	}
	return nil
}

// Evict drops the cached detail for id. It is a no-op without a cache.
func (s *QueryService) Evict(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("evict point %d: %w", id, err)
	}
	return nil
}

func (s *QueryService) load(ctx context.Context, id int64) (*models.PointDetail, error) {
	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	p, err := s.repo.GetByID(storeCtx, id)
	if err != nil {
		return nil, fmt.Errorf("get point: %w", err)
	}
	titles, err := s.repo.ItemTitles(storeCtx, id)
	if err != nil {
		return nil, fmt.Errorf("get point items: %w", err)
	}
	if titles == nil {
		titles = []string{}
	}
	return &models.PointDetail{Point: *p, ItemTitles: titles}, nil
}

func (s *QueryService) store(ctx context.Context, d *models.PointDetail) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, toCachedPoint(d)); err != nil {
		s.log.WarnContext(ctx, "point cache write failed", "point_id", d.ID, "error", err)
	}
}

func toCachedPoint(d *models.PointDetail) *pkgcache.CachedPoint {
	return &pkgcache.CachedPoint{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Whatsapp:   d.Whatsapp,
		Latitude:   d.Latitude,
		Longitude:  d.Longitude,
		City:       d.City,
		UF:         d.UF.String(),
		Image:      d.Image,
		ItemTitles: d.ItemTitles,
	}
}

func fromCachedPoint(c *pkgcache.CachedPoint) *models.PointDetail {
	titles := c.ItemTitles
	if titles == nil {
		titles = []string{}
	}
	return &models.PointDetail{
		Point: models.Point{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Whatsapp:  c.Whatsapp,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			City:      c.City,
			UF:        models.UF(c.UF),
			Image:     c.Image,
		},
		ItemTitles: titles,
	}
}
