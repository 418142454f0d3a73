// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/httpx"
	"github.com/ghuser/ecopoints/pkg/uploads"
	catalogdomain "github.com/ghuser/ecopoints/services/catalog/domain"
	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 with a generic message.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, true))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrCatalogEmpty),
		errors.Is(err, pointsdomain.ErrPointNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, pointsdomain.ErrValidationFailed),
		errors.Is(err, uploads.ErrUnsupportedImage):
		return http.StatusBadRequest // 400
	case errors.Is(err, pointsdomain.ErrAssociationLookupFailed),
		errors.Is(err, database.ErrPersistenceFailed),
		errors.Is(err, database.ErrStoreUnavailable):
		return http.StatusBadRequest // 400, store failures are reported to the client
	default:
		return http.StatusInternalServerError // 500
	}
}
