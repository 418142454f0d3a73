package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
)

// pointID parses the {id} route parameter as a positive integer.
func pointID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid point id %q", pointsdomain.ErrValidationFailed, raw)
	}
	return id, nil
}
