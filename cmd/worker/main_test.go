package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/ecopoints/pkg/logger"
	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
	pointEvents "github.com/ghuser/ecopoints/services/points/domain/events"
)

type fakeMaintainer struct {
	warmed, evicted []int64
	warmErr         error
}

func (f *fakeMaintainer) Warm(_ context.Context, id int64) error {
	if f.warmErr != nil {
		return f.warmErr
	}
	f.warmed = append(f.warmed, id)
	return nil
}

func (f *fakeMaintainer) Evict(_ context.Context, id int64) error {
	f.evicted = append(f.evicted, id)
	return nil
}

func newMsg(t *testing.T, v any) *message.Message {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return message.NewMessage(watermill.NewUUID(), data)
}

func TestHandlePointRegistered(t *testing.T) {
	t.Run("warms cache", func(t *testing.T) {
		m := &fakeMaintainer{}
		h := handlePointRegistered(m, logger.Nop())
		if err := h(context.Background(), newMsg(t, pointEvents.NewPointRegistered(4, "Recife", "PE", []int64{1}))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m.warmed) != 1 || m.warmed[0] != 4 {
			t.Fatalf("expected point 4 warmed, got %v", m.warmed)
		}
	})

	t.Run("point already gone is acked", func(t *testing.T) {
		m := &fakeMaintainer{warmErr: fmt.Errorf("get point: %w", pointsdomain.ErrPointNotFound)}
		h := handlePointRegistered(m, logger.Nop())
		if err := h(context.Background(), newMsg(t, pointEvents.NewPointRegistered(4, "Recife", "PE", nil))); err != nil {
			t.Fatalf("expected nil for vanished point, got %v", err)
		}
	})

	t.Run("store failure is retried", func(t *testing.T) {
		m := &fakeMaintainer{warmErr: errors.New("store unavailable")}
		h := handlePointRegistered(m, logger.Nop())
		if err := h(context.Background(), newMsg(t, pointEvents.NewPointRegistered(4, "Recife", "PE", nil))); err == nil {
			t.Fatal("expected error so the bus retries")
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		h := handlePointRegistered(&fakeMaintainer{}, logger.Nop())
		msg := message.NewMessage(watermill.NewUUID(), []byte("{not json"))
		if err := h(context.Background(), msg); err == nil {
			t.Fatal("expected decode error")
		}
	})
}

func TestHandlePointDeleted(t *testing.T) {
	m := &fakeMaintainer{}
	h := handlePointDeleted(m, logger.Nop())
	if err := h(context.Background(), newMsg(t, pointEvents.NewPointDeleted(9))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.evicted) != 1 || m.evicted[0] != 9 {
		t.Fatalf("expected point 9 evicted, got %v", m.evicted)
	}
}
