package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/uploads"
	catalogdomain "github.com/ghuser/ecopoints/services/catalog/domain"
	"github.com/ghuser/ecopoints/services/catalog/domain/models"
)

type stubLister struct {
	items []models.Item
	err   error
}

func (s stubLister) List(context.Context) ([]models.Item, error) { return s.items, s.err }

func serve(h *ListItemsHandler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Execute(rr, httptest.NewRequest(http.MethodGet, "/items", http.NoBody))
	return rr
}

func TestListItemsHandler_Success(t *testing.T) {
	h := NewListItemsHandler(stubLister{items: []models.Item{
		{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
	}}, uploads.NewResolver("http://host:3333/uploads"))

	rr := serve(h)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body []map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected 1 item, got %d", len(body))
	}
	if body[0]["image_url"] != "http://host:3333/uploads/lampadas.svg" {
		t.Errorf("unexpected image_url %v", body[0]["image_url"])
	}
	if body[0]["title"] != "Lâmpadas" || body[0]["id"] != float64(1) {
		t.Errorf("unexpected item %v", body[0])
	}
	if _, ok := body[0]["image"]; ok {
		t.Error("raw image reference must not be exposed")
	}
}

func TestListItemsHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty catalog", catalogdomain.ErrCatalogEmpty, http.StatusNotFound},
		{"store unavailable", fmt.Errorf("list items: %w", database.Classify(context.DeadlineExceeded)), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(NewListItemsHandler(stubLister{err: tt.err}, uploads.NewResolver("http://h/uploads")))
			if rr.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rr.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected error message")
			}
		})
	}
}
