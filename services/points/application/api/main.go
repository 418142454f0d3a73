package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ecopoints/pkg/app"
	"github.com/ghuser/ecopoints/services/points/application/handlers"
	appsvcs "github.com/ghuser/ecopoints/services/points/application/services"
)

// PointsRoutes registers the point registration, query and admin endpoints.
func PointsRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	log := a.Logger.With("context", "points")
	r.Route("/points", func(r chi.Router) {
		r.Post("/", handlers.NewPostPointHandler(svcs.Registration, a.Uploads, a.Images, a.Config.MaxUploadBytes, log).Execute)
		r.Get("/", handlers.NewListPointsHandler(svcs.Query, a.Images).Execute)
		r.Get("/{id}", handlers.NewGetPointHandler(svcs.Query, a.Images).Execute)
		r.Delete("/{id}", handlers.NewDeletePointHandler(svcs.Admin).Execute)
		r.Delete("/reset/{id}", handlers.NewResetPointItemsHandler(svcs.Admin).Execute)
	})
}
