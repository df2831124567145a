package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/ports/primary"
)

// CartAdapter renders the cart and the outcomes of cart mutations.
type CartAdapter struct {
	service primary.CartService
	out     io.Writer
}

// NewCartAdapter creates a CartAdapter writing to out.
func NewCartAdapter(service primary.CartService, out io.Writer) *CartAdapter {
	return &CartAdapter{service: service, out: out}
}

// Show prints the cart with per-line subtotals and the running total.
// Returns the entries so interactive callers can branch on emptiness.
func (a *CartAdapter) Show(ctx context.Context) ([]cart.Entry, error) {
	entries, err := a.service.View(ctx)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Cart is empty.")
		return entries, nil
	}

	rule := "────────────────────────────────────────────────────────────"
	fmt.Fprintf(a.out, "\n%-30s %3s  %8s  %10s\n", "Item", "Qty", "Rate", "Subtotal")
	fmt.Fprintln(a.out, rule)
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-30s %3d  ₹%8s  ₹%10s\n",
			e.Product.Name, e.Quantity, e.Product.Cost.StringFixed(2), e.Subtotal().StringFixed(2))
	}
	fmt.Fprintln(a.out, rule)
	fmt.Fprintf(a.out, "Total = %s\n\n", color.New(color.FgHiGreen).Sprintf("₹%s", cart.Total(entries).StringFixed(2)))
	return entries, nil
}

// Add merges quantity of a product into the cart and reports the result.
func (a *CartAdapter) Add(ctx context.Context, productID, quantity int) error {
	result, err := a.service.Add(ctx, productID, quantity)
	if err != nil {
		return err
	}

	if result.Merged {
		fmt.Fprintf(a.out, "✓ Added %d x %s (now %d in cart)\n", quantity, result.Entry.Product.Name, result.Entry.Quantity)
	} else {
		fmt.Fprintf(a.out, "✓ Added %d x %s to cart\n", quantity, result.Entry.Product.Name)
	}
	return nil
}

// Remove deletes quantity of a product from the cart and reports the result.
func (a *CartAdapter) Remove(ctx context.Context, productID, quantity int) error {
	result, err := a.service.Remove(ctx, productID, quantity)
	if err != nil {
		return err
	}

	if result.RemovedAll {
		fmt.Fprintf(a.out, "✓ Removed all %s from cart\n", result.Name)
	} else {
		fmt.Fprintf(a.out, "✓ Removed %d of %s. Remaining: %d\n", quantity, result.Name, result.Remaining)
	}
	return nil
}

// Clear empties the cart.
func (a *CartAdapter) Clear(ctx context.Context) error {
	if err := a.service.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "✓ Cart cleared")
	return nil
}
