package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ghuser/ecopoints/pkg/database"
	"github.com/ghuser/ecopoints/pkg/logger"
	catalogdomain "github.com/ghuser/ecopoints/services/catalog/domain"
	"github.com/ghuser/ecopoints/services/catalog/domain/models"
)

type fakeItemRepo struct {
	items    []models.Item
	err      error
	deadline bool
}

func (f *fakeItemRepo) List(ctx context.Context) ([]models.Item, error) {
	_, f.deadline = ctx.Deadline()
	return f.items, f.err
}

func TestCatalogService_List(t *testing.T) {
	seeded := []models.Item{
		{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
		{ID: 2, Title: "Pilhas e Baterias", Image: "baterias.svg"},
	}

	t.Run("returns items", func(t *testing.T) {
		svc := NewCatalogService(&fakeItemRepo{items: seeded}, nil, logger.Nop(), CatalogOptions{EmptyIsError: true})
		items, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[1].Title != "Pilhas e Baterias" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("empty catalog is an error when configured", func(t *testing.T) {
		svc := NewCatalogService(&fakeItemRepo{}, nil, logger.Nop(), CatalogOptions{EmptyIsError: true})
		_, err := svc.List(context.Background())
		if !errors.Is(err, catalogdomain.ErrCatalogEmpty) {
			t.Fatalf("expected ErrCatalogEmpty, got %v", err)
		}
	})

	t.Run("empty catalog is an empty slice otherwise", func(t *testing.T) {
		svc := NewCatalogService(&fakeItemRepo{}, nil, logger.Nop(), CatalogOptions{EmptyIsError: false})
		items, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})

	t.Run("store failure is propagated", func(t *testing.T) {
		repoErr := database.Classify(context.DeadlineExceeded)
		svc := NewCatalogService(&fakeItemRepo{err: repoErr}, nil, logger.Nop(), CatalogOptions{})
		_, err := svc.List(context.Background())
		if !errors.Is(err, database.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("store timeout applied", func(t *testing.T) {
		repo := &fakeItemRepo{items: seeded}
		svc := NewCatalogService(repo, nil, logger.Nop(), CatalogOptions{StoreTimeout: time.Second})
		if _, err := svc.List(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.deadline {
			t.Fatal("expected repository call to carry a deadline")
		}
	})
}
