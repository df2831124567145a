package app

import (
	"context"
	"testing"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
)

func TestDoctorDiagnoseCleanStores(t *testing.T) {
	catalogStore := seededCatalogStore()
	cartStore := &fakeCartStore{present: true, records: []cart.Record{
		cartRecord("101", "Paracetamol", "20.00", "2"),
	}}
	svc := NewDoctorService(catalogStore, cartStore)

	report, err := svc.Diagnose(context.Background())
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}

	if !report.CatalogPresent || !report.CartPresent {
		t.Error("both stores should be reported present")
	}
	if report.CatalogProducts != len(catalog.Seed()) {
		t.Errorf("expected %d products, got %d", len(catalog.Seed()), report.CatalogProducts)
	}
	if report.CartEntries != 1 {
		t.Errorf("expected 1 cart entry, got %d", report.CartEntries)
	}
	if len(report.Findings) != 0 {
		t.Errorf("clean stores should yield no findings, got %+v", report.Findings)
	}
}

func TestDoctorDiagnoseReportsDefaultedFields(t *testing.T) {
	catalogStore := &fakeCatalogStore{present: true, records: []catalog.Record{
		{ID: "101", Name: "Paracetamol", Intensity: "500mg", Disease: "Fever", Cost: "20.00"},
		{ID: "abc", Name: "Broken", Intensity: "1mg", Disease: "Fever", Cost: "oops"},
	}}
	cartStore := &fakeCartStore{present: true, records: []cart.Record{
		{Record: catalog.Record{ID: "101", Name: "Paracetamol", Intensity: "500mg", Disease: "Fever", Cost: "20.00"}, Quantity: "many"},
	}}
	svc := NewDoctorService(catalogStore, cartStore)

	report, err := svc.Diagnose(context.Background())
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}

	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %+v", report.Findings)
	}

	first := report.Findings[0]
	if first.Store != "catalog" || first.RowID != "abc" {
		t.Errorf("unexpected catalog finding %+v", first)
	}
	if len(first.Defaulted) != 2 {
		t.Errorf("expected both id and cost defaulted, got %v", first.Defaulted)
	}

	second := report.Findings[1]
	if second.Store != "cart" || second.RowID != "101" {
		t.Errorf("unexpected cart finding %+v", second)
	}
}

func TestDoctorDiagnoseMissingStores(t *testing.T) {
	svc := NewDoctorService(&fakeCatalogStore{}, &fakeCartStore{})

	report, err := svc.Diagnose(context.Background())
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	if report.CatalogPresent || report.CartPresent {
		t.Error("absent stores must be reported absent")
	}
	if report.CatalogProducts != 0 || report.CartEntries != 0 {
		t.Error("absent stores must report zero rows")
	}
}
