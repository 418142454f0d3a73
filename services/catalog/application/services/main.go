package services

import (
	"github.com/ghuser/ecopoints/pkg/app"
	"github.com/ghuser/ecopoints/pkg/cache"
	"github.com/ghuser/ecopoints/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog context.
type Services struct {
	Catalog *CatalogService
}

// New wires the catalog services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var catalogCache *cache.CatalogCache
	if a.Redis != nil {
		catalogCache = cache.NewCatalogCache(a.Redis)
	}
	return &Services{
		Catalog: NewCatalogService(
			postgres.NewItemRepository(a.Db),
			catalogCache,
			a.Logger.With("context", "catalog"),
			CatalogOptions{
				StoreTimeout: a.Config.StoreTimeout,
				EmptyIsError: a.Config.CatalogEmptyIsError,
			},
		),
	}
}
