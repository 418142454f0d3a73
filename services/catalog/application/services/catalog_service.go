package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/ecopoints/pkg/cache"
	"github.com/ghuser/ecopoints/pkg/logger"
	catalogdomain "github.com/ghuser/ecopoints/services/catalog/domain"
	"github.com/ghuser/ecopoints/services/catalog/domain/models"
	"github.com/ghuser/ecopoints/services/catalog/domain/repositories"
)

// CatalogService serves the item catalog, read-through the Redis cache.
type CatalogService struct {
	repo         repositories.ItemRepository
	cache        *pkgcache.CatalogCache
	log          logger.Logger
	timeout      time.Duration
	emptyIsError bool
}

// CatalogOptions configures a CatalogService.
type CatalogOptions struct {
	// StoreTimeout bounds each store round-trip. Zero disables the bound.
	StoreTimeout time.Duration
	// EmptyIsError makes List fail with ErrCatalogEmpty instead of returning
	// an empty slice.
	EmptyIsError bool
}

// NewCatalogService returns a CatalogService. cache may be nil.
func NewCatalogService(repo repositories.ItemRepository, cache *pkgcache.CatalogCache, log logger.Logger, opts CatalogOptions) *CatalogService {
	return &CatalogService{
		repo:         repo,
		cache:        cache,
		log:          log,
		timeout:      opts.StoreTimeout,
		emptyIsError: opts.EmptyIsError,
	}
}

// List returns the whole catalog ordered by id.
func (s *CatalogService) List(ctx context.Context) ([]models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return fromCache(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "catalog cache read failed", "error", err)
		}
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	items, err := s.repo.List(storeCtx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		if s.emptyIsError {
			return nil, catalogdomain.ErrCatalogEmpty
		}
		return []models.Item{}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, toCache(items)); err != nil {
			s.log.WarnContext(ctx, "catalog cache write failed", "error", err)
		}
	}
	return items, nil
}

func (s *CatalogService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func toCache(items []models.Item) []pkgcache.CachedCatalogItem {
	out := make([]pkgcache.CachedCatalogItem, len(items))
	for i, it := range items {
		out[i] = pkgcache.CachedCatalogItem{ID: it.ID, Title: it.Title, Image: it.Image}
	}
	return out
}

func fromCache(cached []pkgcache.CachedCatalogItem) []models.Item {
	out := make([]models.Item, len(cached))
	for i, c := range cached {
		out[i] = models.Item{ID: c.ID, Title: c.Title, Image: c.Image}
	}
	return out
}
