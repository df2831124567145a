package billing

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
)

func entry(id int, name, cost string, qty int) cart.Entry {
	c, _ := decimal.NewFromString(cost)
	return cart.Entry{
		Product:  catalog.Product{ID: id, Name: name, Intensity: "500mg", Disease: "Fever", Cost: c},
		Quantity: qty,
	}
}

func TestBuildComputesTotals(t *testing.T) {
	entries := []cart.Entry{
		entry(101, "Paracetamol", "20.00", 2),
		entry(103, "Azithromycin", "85.00", 1),
	}

	receipt, err := Build(Customer{Name: "Asha"}, entries, "ABCDEF1234")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := receipt.Total.StringFixed(2); got != "125.00" {
		t.Errorf("expected total 125.00, got %s", got)
	}
	if len(receipt.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(receipt.Lines))
	}
	if got := receipt.Lines[0].Subtotal.StringFixed(2); got != "40.00" {
		t.Errorf("expected first subtotal 40.00, got %s", got)
	}
	if receipt.TrackingID != "ABCDEF1234" {
		t.Errorf("expected tracking ID preserved, got %s", receipt.TrackingID)
	}
}

func TestBuildRefusesEmptyCart(t *testing.T) {
	receipt, err := Build(Customer{Name: "Asha"}, nil, "ABCDEF1234")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if receipt != nil {
		t.Errorf("expected no receipt, got %+v", receipt)
	}
}

func TestNewTrackingID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTrackingID()
		if len(id) != 10 {
			t.Fatalf("expected 10-char tracking ID, got %q", id)
		}
		for _, r := range id {
			if !strings.ContainsRune("0123456789ABCDEF", r) {
				t.Fatalf("unexpected character %q in tracking ID %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("tracking ID %q repeated within 100 draws", id)
		}
		seen[id] = true
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("ABCDEF1234"); got != "bill_ABCDEF1234.txt" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestRender(t *testing.T) {
	entries := []cart.Entry{
		entry(101, "Paracetamol", "20.00", 2),
		entry(103, "Azithromycin", "85.00", 1),
	}
	receipt, err := Build(Customer{Name: "Asha", Address: "12 Lake Rd", Phone: "9000000000"}, entries, "ABCDEF1234")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	text := receipt.Render()
	for _, want := range []string{
		StoreName,
		"Customer: Asha",
		"Address:  12 Lake Rd",
		"Phone:    9000000000",
		"Paracetamol",
		"Total: ₹125.00",
		"Payment Mode: Cash on Delivery",
		"Tracking ID: ABCDEF1234",
		"Thank you for shopping with Chemist 4 U!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered bill missing %q:\n%s", want, text)
		}
	}
}
