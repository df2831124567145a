package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/chemist4u/internal/core/catalog"
)

func TestCatalogServiceList(t *testing.T) {
	svc := NewCatalogService(seededCatalogStore(), testLogger())

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 9 {
		t.Fatalf("expected 9 products, got %d", len(products))
	}
	if products[0].ID != 101 || products[0].Name != "Paracetamol" {
		t.Errorf("unexpected first product: %+v", products[0])
	}
}

func TestCatalogServiceListKeepsMalformedRows(t *testing.T) {
	store := &fakeCatalogStore{records: []catalog.Record{
		{ID: "101", Name: "Paracetamol", Cost: "20.00"},
		{ID: "bad", Name: "Mystery", Cost: "nope"},
	}, present: true}
	svc := NewCatalogService(store, testLogger())

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected malformed row kept with defaults, got %d products", len(products))
	}
	if products[1].ID != 0 || !products[1].Cost.IsZero() {
		t.Errorf("expected defaulted product, got %+v", products[1])
	}
}

func TestCatalogServiceGet(t *testing.T) {
	svc := NewCatalogService(seededCatalogStore(), testLogger())

	tests := []struct {
		name    string
		id      int
		wantErr error
	}{
		{name: "known id", id: 103},
		{name: "unknown id", id: 999, wantErr: catalog.ErrNotFound},
		{name: "id zero is reserved", id: 0, wantErr: catalog.ErrNotFound},
		{name: "negative id", id: -1, wantErr: catalog.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := svc.Get(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && product.ID != tt.id {
				t.Errorf("expected product %d, got %+v", tt.id, product)
			}
		})
	}
}

func TestCatalogServiceSearch(t *testing.T) {
	svc := NewCatalogService(seededCatalogStore(), testLogger())

	result, err := svc.Search(context.Background(), "fever")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result.Exact) != 2 || len(result.Approximate) != 0 {
		t.Errorf("expected 2 exact matches for fever, got %+v", result)
	}

	result, err = svc.Search(context.Background(), "Fev")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result.Exact) != 0 {
		t.Errorf("expected no exact matches for Fev, got %d", len(result.Exact))
	}
	if len(result.Approximate) != 2 {
		t.Errorf("expected 2 approximate matches for Fev, got %d", len(result.Approximate))
	}

	result, err = svc.Search(context.Background(), "Headache")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !result.Empty() {
		t.Errorf("expected empty result for Headache, got %+v", result)
	}
}
