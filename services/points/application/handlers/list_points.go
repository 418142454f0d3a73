package handlers

import (
	"context"
	"net/http"

	"github.com/ghuser/ecopoints/pkg/errhttp"
	"github.com/ghuser/ecopoints/pkg/httpx"
	"github.com/ghuser/ecopoints/pkg/uploads"
	"github.com/ghuser/ecopoints/services/points/domain/models"
)

// PointFinder is the read side the listing and detail handlers need.
type PointFinder interface {
	List(ctx context.Context, f models.Filter) ([]models.Point, error)
	Detail(ctx context.Context, id int64) (*models.PointDetail, error)
}

// ListPointsHandler handles GET /points.
type ListPointsHandler struct {
	finder PointFinder
	images uploads.Resolver
}

// NewListPointsHandler returns a ListPointsHandler.
func NewListPointsHandler(finder PointFinder, images uploads.Resolver) *ListPointsHandler {
	return &ListPointsHandler{finder: finder, images: images}
}

// Execute lists the points of a city that accept any of the given items.
//
//	@Summary		List points
//	@Description	Lists collection points in city/uf; with items, only points accepting at least one of them
//	@Tags			points
//	@Produce		json
//	@Param			city	query		string	true	"City"
//	@Param			uf		query		string	true	"Two-letter state code"
//	@Param			items	query		string	false	"Comma-separated item ids"
//	@Success		200		{array}		PointResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/points [get]
func (h *ListPointsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := models.ParseFilter(q.Get("city"), q.Get("uf"), q.Get("items"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	points, err := h.finder.List(r.Context(), filter)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]PointResponse, len(points))
	for i, p := range points {
		resp[i] = toPointResponse(p, h.images)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
