package handlers

import (
	"net/http"

	"github.com/ghuser/ecopoints/pkg/errhttp"
	"github.com/ghuser/ecopoints/pkg/httpx"
)

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"success"`
} // @name MessageResponse

// ResetPointItemsHandler handles DELETE /points/reset/{id}.
type ResetPointItemsHandler struct {
	admin PointAdmin
}

// NewResetPointItemsHandler returns a ResetPointItemsHandler.
func NewResetPointItemsHandler(admin PointAdmin) *ResetPointItemsHandler {
	return &ResetPointItemsHandler{admin: admin}
}

// Execute removes every item association of a point, keeping the point.
//
//	@Summary		Reset point items
//	@Description	Development aid: wipes the point's accepted items
//	@Tags			admin
//	@Produce		json
//	@Param			id	path		int	true	"Point id"
//	@Success		200	{object}	MessageResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/points/reset/{id} [delete]
func (h *ResetPointItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pointID(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.admin.ResetPointItems(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "success"})
}
