// Package services contains stateless domain services for the points bounded
// context. They operate purely on domain types.
package services

import (
	"fmt"

	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
	"github.com/ghuser/ecopoints/services/points/domain/models"
)

// ValidateNewPoint checks the invariants a point must satisfy before it is
// handed to the repository, whatever path built it.
//
// Rules:
//   - not yet persisted (ID is zero)
//   - image reference present
//   - at least one item id, none repeated
func ValidateNewPoint(p *models.Point, itemIDs models.ItemIDs) error {
	if p == nil {
		return fmt.Errorf("%w: point is nil", pointsdomain.ErrValidationFailed)
	}
	if p.ID != 0 {
		return fmt.Errorf("%w: point already has id %d", pointsdomain.ErrValidationFailed, p.ID)
	}
	if p.Image == "" {
		return fmt.Errorf("%w: %w", pointsdomain.ErrValidationFailed, pointsdomain.ErrMissingImage)
	}
	if len(itemIDs) == 0 {
		return fmt.Errorf("%w: %w: no item ids", pointsdomain.ErrValidationFailed, pointsdomain.ErrInvalidItemList)
	}
	seen := make(map[int64]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if id <= 0 {
			return fmt.Errorf("%w: %w: item id %d", pointsdomain.ErrValidationFailed, pointsdomain.ErrInvalidItemList, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %w: item id %d repeated", pointsdomain.ErrValidationFailed, pointsdomain.ErrInvalidItemList, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
