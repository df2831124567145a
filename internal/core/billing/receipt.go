// Package billing contains the pure business logic for checkout: receipt
// construction, totals, tracking IDs, and the bill text format.
package billing

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/chemist4u/internal/core/cart"
)

// StoreName is the banner printed on every bill.
const StoreName = "CHEMIST 4 U"

// PaymentMode is the only supported payment mode.
const PaymentMode = "Cash on Delivery"

// ErrEmptyCart indicates checkout was attempted on an empty cart. Checkout is
// refused; a zero-total receipt is never produced.
var ErrEmptyCart = errors.New("cart is empty")

// Customer identifies the person the order ships to.
type Customer struct {
	Name    string
	Address string
	Phone   string
}

// Line is one itemized receipt line, captured at checkout time.
type Line struct {
	Name      string
	Intensity string
	Quantity  int
	Rate      decimal.Decimal
	Subtotal  decimal.Decimal
}

// Receipt is the immutable snapshot of a completed checkout.
type Receipt struct {
	Customer   Customer
	Lines      []Line
	Total      decimal.Decimal
	TrackingID string
}

// NewTrackingID returns a short high-entropy order token: the first 10 hex
// digits of a random UUID, uppercased. Collisions are negligible at this
// scale, so the token doubles as the receipt filename key.
func NewTrackingID() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:10]
}

// Filename returns the receipt filename for a tracking ID.
func Filename(trackingID string) string {
	return fmt.Sprintf("bill_%s.txt", trackingID)
}

// Build snapshots the cart into a receipt. Fails with ErrEmptyCart when there
// is nothing to bill.
func Build(customer Customer, entries []cart.Entry, trackingID string) (*Receipt, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]Line, len(entries))
	total := decimal.Zero
	for i, e := range entries {
		subtotal := e.Subtotal()
		lines[i] = Line{
			Name:      e.Product.Name,
			Intensity: e.Product.Intensity,
			Quantity:  e.Quantity,
			Rate:      e.Product.Cost,
			Subtotal:  subtotal,
		}
		total = total.Add(subtotal)
	}

	return &Receipt{
		Customer:   customer,
		Lines:      lines,
		Total:      total,
		TrackingID: trackingID,
	}, nil
}

// Render produces the durable bill text.
func (r *Receipt) Render() string {
	rule := strings.Repeat("-", 60)

	var b strings.Builder
	b.WriteString(StoreName + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "Customer: %s\n", r.Customer.Name)
	fmt.Fprintf(&b, "Address:  %s\n", r.Customer.Address)
	fmt.Fprintf(&b, "Phone:    %s\n", r.Customer.Phone)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-30s %3s  %8s  %10s\n", "Item", "Qty", "Rate", "Subtotal")
	b.WriteString(rule + "\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%-30s %3d  ₹%8s  ₹%10s\n",
			line.Name, line.Quantity, line.Rate.StringFixed(2), line.Subtotal.StringFixed(2))
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total: ₹%s\n", r.Total.StringFixed(2))
	fmt.Fprintf(&b, "Payment Mode: %s\n", PaymentMode)
	fmt.Fprintf(&b, "Tracking ID: %s\n", r.TrackingID)
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Thank you for shopping with Chemist 4 U!\n")
	return b.String()
}
