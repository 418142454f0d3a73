package domain

import (
	"errors"

	"github.com/ghuser/ecopoints/pkg/database"
)

// Sentinel errors for the points domain. Use errors.Is() to check these.
var (
	// ErrValidationFailed indicates malformed or missing input, detected
	// before any store interaction.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingImage indicates a registration without an image reference.
	// Always wrapped together with ErrValidationFailed.
	ErrMissingImage = errors.New("image is required")

	// ErrInvalidItemList indicates the items list parsed to zero valid ids or
	// contained a token that is not a positive integer. Always wrapped
	// together with ErrValidationFailed.
	ErrInvalidItemList = errors.New("invalid item list")

	// ErrPointNotFound indicates no point exists with the requested id.
	ErrPointNotFound = errors.New("point not found")

	// ErrAssociationLookupFailed indicates the point exists but its item
	// titles could not be loaded.
	ErrAssociationLookupFailed = errors.New("point items lookup failed")

	// ErrUnknownItem indicates a registration referenced an item id missing
	// from the catalog. Always wrapped together with ErrPersistenceFailed.
	ErrUnknownItem = errors.New("unknown item")
)

// Store failures are shared with every bounded context.
var (
	ErrPersistenceFailed = database.ErrPersistenceFailed
	ErrStoreUnavailable  = database.ErrStoreUnavailable
)
