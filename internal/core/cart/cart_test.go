package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/example/chemist4u/internal/core/catalog"
)

func product(id int, name, cost string) catalog.Product {
	c, _ := decimal.NewFromString(cost)
	return catalog.Product{ID: id, Name: name, Intensity: "500mg", Disease: "Fever", Cost: c}
}

func TestAddOrMergeMergesSameID(t *testing.T) {
	entries := AddOrMerge(nil, product(101, "Paracetamol", "20.00"), 2)
	entries = AddOrMerge(entries, product(101, "Paracetamol", "20.00"), 3)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after merging same ID, got %d", len(entries))
	}
	if entries[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", entries[0].Quantity)
	}
}

func TestAddOrMergeAppendsNewID(t *testing.T) {
	entries := AddOrMerge(nil, product(101, "Paracetamol", "20.00"), 1)
	entries = AddOrMerge(entries, product(103, "Azithromycin", "85.00"), 2)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Product.ID != 101 || entries[1].Product.ID != 103 {
		t.Errorf("insertion order not preserved: got %d, %d", entries[0].Product.ID, entries[1].Product.ID)
	}
}

func TestAddOrMergeNonPositiveIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{name: "zero quantity", qty: 0},
		{name: "negative quantity", qty: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := AddOrMerge(nil, product(101, "Paracetamol", "20.00"), 1)
			got := AddOrMerge(entries, product(102, "Dolo", "30.00"), tt.qty)

			if len(got) != 1 {
				t.Fatalf("expected cart unchanged, got %d entries", len(got))
			}
			if got[0].Product.ID != 101 || got[0].Quantity != 1 {
				t.Errorf("entry mutated: %+v", got[0])
			}
		})
	}
}

func TestRemoveQuantity(t *testing.T) {
	tests := []struct {
		name        string
		removeID    int
		amount      int
		wantErr     error
		wantEntries int
		wantQty     int
	}{
		{name: "partial removal leaves remainder", removeID: 101, amount: 2, wantEntries: 2, wantQty: 3},
		{name: "removing exact quantity deletes entry", removeID: 101, amount: 5, wantEntries: 1},
		{name: "removing more than quantity deletes entry", removeID: 101, amount: 99, wantEntries: 1},
		{name: "unknown ID fails and leaves cart unchanged", removeID: 999, amount: 1, wantErr: ErrNotFound, wantEntries: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := AddOrMerge(nil, product(101, "Paracetamol", "20.00"), 5)
			entries = AddOrMerge(entries, product(103, "Azithromycin", "85.00"), 1)

			got, err := RemoveQuantity(entries, tt.removeID, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if len(got) != tt.wantEntries {
				t.Fatalf("expected %d entries, got %d", tt.wantEntries, len(got))
			}
			if tt.wantQty > 0 {
				entry, ok := Find(got, tt.removeID)
				if !ok {
					t.Fatalf("entry %d missing after partial removal", tt.removeID)
				}
				if entry.Quantity != tt.wantQty {
					t.Errorf("expected quantity %d, got %d", tt.wantQty, entry.Quantity)
				}
			}
		})
	}
}

func TestRemoveQuantityPreservesOrder(t *testing.T) {
	entries := AddOrMerge(nil, product(101, "Paracetamol", "20.00"), 1)
	entries = AddOrMerge(entries, product(102, "Dolo", "30.00"), 1)
	entries = AddOrMerge(entries, product(103, "Azithromycin", "85.00"), 1)

	got, err := RemoveQuantity(entries, 102, 1)
	if err != nil {
		t.Fatalf("RemoveQuantity failed: %v", err)
	}
	if len(got) != 2 || got[0].Product.ID != 101 || got[1].Product.ID != 103 {
		t.Errorf("order not preserved after removal: %+v", got)
	}
}

func TestTotal(t *testing.T) {
	entries := AddOrMerge(nil, product(101, "Paracetamol", "20.00"), 2)
	entries = AddOrMerge(entries, product(103, "Azithromycin", "85.00"), 1)

	if got := Total(entries).StringFixed(2); got != "125.00" {
		t.Errorf("expected total 125.00, got %s", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		rec           Record
		wantQty       int
		wantDefaulted []string
	}{
		{
			name:    "well-formed record",
			rec:     Record{Record: catalog.Record{ID: "101", Name: "Paracetamol", Cost: "20.00"}, Quantity: "4"},
			wantQty: 4,
		},
		{
			name:          "unparsable quantity defaults to 1",
			rec:           Record{Record: catalog.Record{ID: "101", Name: "Paracetamol", Cost: "20.00"}, Quantity: "lots"},
			wantQty:       1,
			wantDefaulted: []string{"quantity"},
		},
		{
			name:          "malformed id and cost recorded",
			rec:           Record{Record: catalog.Record{ID: "abc", Name: "Paracetamol", Cost: "cheap"}, Quantity: "2"},
			wantQty:       2,
			wantDefaulted: []string{"id", "cost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, defaulted := Parse(tt.rec)
			if entry.Quantity != tt.wantQty {
				t.Errorf("expected quantity %d, got %d", tt.wantQty, entry.Quantity)
			}
			if len(defaulted) != len(tt.wantDefaulted) {
				t.Fatalf("expected defaulted %v, got %v", tt.wantDefaulted, defaulted)
			}
			for i, f := range tt.wantDefaulted {
				if defaulted[i] != f {
					t.Errorf("expected defaulted field %q, got %q", f, defaulted[i])
				}
			}
		})
	}
}

func TestEntryRecordRoundTrip(t *testing.T) {
	entry := Entry{Product: product(101, "Paracetamol", "20.00"), Quantity: 3}

	parsed, defaulted := Parse(entry.Record())
	if len(defaulted) != 0 {
		t.Fatalf("round trip defaulted fields: %v", defaulted)
	}
	if parsed.Product.ID != 101 || parsed.Quantity != 3 {
		t.Errorf("round trip changed entry: %+v", parsed)
	}
	if !parsed.Product.Cost.Equal(entry.Product.Cost) {
		t.Errorf("round trip changed cost: %s", parsed.Product.Cost)
	}
}
