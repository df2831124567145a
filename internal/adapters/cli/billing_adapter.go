package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/chemist4u/internal/core/billing"
	"github.com/example/chemist4u/internal/ports/primary"
)

// BillingAdapter renders checkout summaries.
type BillingAdapter struct {
	service primary.BillingService
	out     io.Writer
}

// NewBillingAdapter creates a BillingAdapter writing to out.
func NewBillingAdapter(service primary.BillingService, out io.Writer) *BillingAdapter {
	return &BillingAdapter{service: service, out: out}
}

// Checkout bills the cart for the customer and prints the bill summary.
func (a *BillingAdapter) Checkout(ctx context.Context, customer billing.Customer) (*primary.CheckoutResult, error) {
	result, err := a.service.Checkout(ctx, customer)
	if err != nil {
		return nil, err
	}
	a.Render(result)
	return result, nil
}

// Render prints an already-completed checkout. The interactive order flow
// uses this after the workflow has performed the checkout itself.
func (a *BillingAdapter) Render(result *primary.CheckoutResult) {
	fmt.Fprintf(a.out, "\n%s - BILL SUMMARY\n", billing.StoreName)
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────")
	for _, line := range result.Receipt.Lines {
		fmt.Fprintf(a.out, "%s (%s) x %d = ₹%s\n",
			line.Name, line.Intensity, line.Quantity, line.Subtotal.StringFixed(2))
	}
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────")
	fmt.Fprintf(a.out, "TOTAL COST: %s\n", color.New(color.FgHiGreen).Sprintf("₹%s", result.Receipt.Total.StringFixed(2)))
	fmt.Fprintf(a.out, "Tracking ID: %s\n", color.New(color.FgHiBlue).Sprint(result.Receipt.TrackingID))
	fmt.Fprintf(a.out, "Bill saved at: %s\n", result.Path)
	fmt.Fprintf(a.out, "\nPayment Mode: %s\n", billing.PaymentMode)
	fmt.Fprintln(a.out, "Thank you for shopping with Chemist 4 U!")
}
