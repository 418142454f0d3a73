package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/ecopoints/pkg/logger"
	"github.com/ghuser/ecopoints/services/points/domain/repositories"
)

// AdminService holds the unauthenticated maintenance operations. Both evict
// the cached detail of the point they touch.
type AdminService struct {
	repo    repositories.PointRepository
	query   *QueryService
	log     logger.Logger
	timeout time.Duration
}

// NewAdminService returns an AdminService. query is used for cache eviction.
func NewAdminService(repo repositories.PointRepository, query *QueryService, log logger.Logger, storeTimeout time.Duration) *AdminService {
	return &AdminService{repo: repo, query: query, log: log, timeout: storeTimeout}
}

// DeletePoint removes the point and its associations. Returns
// ErrPointNotFound when id does not exist.
func (s *AdminService) DeletePoint(ctx context.Context, id int64) error {
	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(storeCtx, id); err != nil {
		return fmt.Errorf("delete point: %w", err)
	}
	s.evict(ctx, id)
	s.log.InfoContext(ctx, "point deleted", "point_id", id)
	return nil
}

// ResetPointItems removes every association row of id; the point itself is
// untouched. An id without associations is not an error.
func (s *AdminService) ResetPointItems(ctx context.Context, id int64) error {
	storeCtx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.ResetItems(storeCtx, id)
	if err != nil {
		return fmt.Errorf("reset point items: %w", err)
	}
	s.evict(ctx, id)
	s.log.InfoContext(ctx, "point items reset", "point_id", id, "removed", n)
	return nil
}

func (s *AdminService) evict(ctx context.Context, id int64) {
	if s.query == nil {
		return
	}
	if err := s.query.Evict(ctx, id); err != nil {
		s.log.WarnContext(ctx, "point cache evict failed", "point_id", id, "error", err)
	}
}
