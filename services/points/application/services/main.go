package services

import (
	"github.com/ghuser/ecopoints/pkg/app"
	"github.com/ghuser/ecopoints/pkg/cache"
	"github.com/ghuser/ecopoints/services/points/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the points context.
type Services struct {
	Registration *RegistrationService
	Query        *QueryService
	Admin        *AdminService
}

// New wires the points services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewPointRepository(a.Db, a.EventBus)
	log := a.Logger.With("context", "points")
	timeout := a.Config.StoreTimeout

	var pointCache *cache.PointCache
	if a.Redis != nil {
		pointCache = cache.NewPointCache(a.Redis)
	}

	query := NewQueryService(repo, pointCache, log, timeout)
	return &Services{
		Registration: NewRegistrationService(repo, log, timeout),
		Query:        query,
		Admin:        NewAdminService(repo, query, log, timeout),
	}
}
