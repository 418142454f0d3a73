package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for the point lifecycle.
const (
	TopicPointRegistered = "point.registered"
	TopicPointDeleted    = "point.deleted"
)

// PointRegisteredEvent is published in the same transaction that inserts a point.
type PointRegisteredEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	PointID    int64     `json:"point_id"`
	City       string    `json:"city"`
	UF         string    `json:"uf"`
	ItemIDs    []int64   `json:"item_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PointDeletedEvent is published in the same transaction that deletes a point.
type PointDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	PointID    int64     `json:"point_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewPointRegistered stamps a fresh event id and time.
func NewPointRegistered(pointID int64, city, uf string, itemIDs []int64) PointRegisteredEvent {
	return PointRegisteredEvent{
		EventID:    uuid.New(),
		Version:    1,
		PointID:    pointID,
		City:       city,
		UF:         uf,
		ItemIDs:    itemIDs,
		OccurredAt: time.Now().UTC(),
	}
}

// NewPointDeleted stamps a fresh event id and time.
func NewPointDeleted(pointID int64) PointDeletedEvent {
	return PointDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		PointID:    pointID,
		OccurredAt: time.Now().UTC(),
	}
}
