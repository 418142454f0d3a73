package handlers

import (
	"context"
	"net/http"

	"github.com/ghuser/ecopoints/pkg/errhttp"
	"github.com/ghuser/ecopoints/pkg/httpx"
	"github.com/ghuser/ecopoints/pkg/uploads"
	"github.com/ghuser/ecopoints/services/catalog/domain/models"
)

// ItemResponse is one catalog entry as returned by GET /items.
type ItemResponse struct {
	ID       int64  `json:"id"        example:"1"`
	Title    string `json:"title"     example:"Lâmpadas"`
	ImageURL string `json:"image_url" example:"http://localhost:3333/uploads/lampadas.svg"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"no stored items found"`
} // @name ErrorResponse

// ItemLister is the catalog operation the handler needs.
type ItemLister interface {
	List(ctx context.Context) ([]models.Item, error)
}

// ListItemsHandler handles GET /items.
type ListItemsHandler struct {
	catalog ItemLister
	images  uploads.Resolver
}

// NewListItemsHandler returns a ListItemsHandler.
func NewListItemsHandler(catalog ItemLister, images uploads.Resolver) *ListItemsHandler {
	return &ListItemsHandler{catalog: catalog, images: images}
}

// Execute lists the item catalog.
//
//	@Summary		List items
//	@Description	Lists every collectible waste category with its icon URL
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = ItemResponse{
			ID:       it.ID,
			Title:    it.Title,
			ImageURL: h.images.URL(it.Image),
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
