package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ecopoints/pkg/app"
	"github.com/ghuser/ecopoints/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/ecopoints/services/catalog/application/services"
)

// CatalogRoutes registers the item catalog endpoints.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Get("/items", handlers.NewListItemsHandler(svcs.Catalog, a.Images).Execute)
}
