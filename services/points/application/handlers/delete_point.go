package handlers

import (
	"context"
	"net/http"

	"github.com/ghuser/ecopoints/pkg/errhttp"
	"github.com/ghuser/ecopoints/pkg/httpx"
)

// PointAdmin is the maintenance side the admin handlers need.
type PointAdmin interface {
	DeletePoint(ctx context.Context, id int64) error
	ResetPointItems(ctx context.Context, id int64) error
}

// DeletePointResponse echoes the removed id.
type DeletePointResponse struct {
	DeletedPointWithID int64 `json:"deletedPointWithId" example:"1"`
} // @name DeletePointResponse

// DeletePointHandler handles DELETE /points/{id}.
type DeletePointHandler struct {
	admin PointAdmin
}

// NewDeletePointHandler returns a DeletePointHandler.
func NewDeletePointHandler(admin PointAdmin) *DeletePointHandler {
	return &DeletePointHandler{admin: admin}
}

// Execute deletes a point and its item associations.
//
//	@Summary		Delete point
//	@Tags			admin
//	@Produce		json
//	@Param			id	path		int	true	"Point id"
//	@Success		200	{object}	DeletePointResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/points/{id} [delete]
func (h *DeletePointHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pointID(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.admin.DeletePoint(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DeletePointResponse{DeletedPointWithID: id})
}
