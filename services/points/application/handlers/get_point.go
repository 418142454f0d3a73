package handlers

import (
	"net/http"

	"github.com/ghuser/ecopoints/pkg/errhttp"
	"github.com/ghuser/ecopoints/pkg/httpx"
	"github.com/ghuser/ecopoints/pkg/uploads"
)

// GetPointHandler handles GET /points/{id}.
type GetPointHandler struct {
	finder PointFinder
	images uploads.Resolver
}

// NewGetPointHandler returns a GetPointHandler.
func NewGetPointHandler(finder PointFinder, images uploads.Resolver) *GetPointHandler {
	return &GetPointHandler{finder: finder, images: images}
}

// Execute returns one point with the titles of the items it accepts.
//
//	@Summary		Get point
//	@Tags			points
//	@Produce		json
//	@Param			id	path		int	true	"Point id"
//	@Success		200	{object}	PointDetailResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/points/{id} [get]
func (h *GetPointHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pointID(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	detail, err := h.finder.Detail(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]ItemTitle, len(detail.ItemTitles))
	for i, title := range detail.ItemTitles {
		items[i] = ItemTitle{Title: title}
	}
	httpx.JSON(w, http.StatusOK, PointDetailResponse{
		PointResponse: toPointResponse(detail.Point, h.images),
		Items:         items,
	})
}
