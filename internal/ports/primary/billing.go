package primary

import (
	"context"

	"github.com/example/chemist4u/internal/core/billing"
)

// BillingService turns the cart into a durable receipt. Checkout is a single
// logical transaction from the caller's point of view: either a receipt is
// saved and the cart emptied, or (on an empty cart) nothing happens at all.
type BillingService interface {
	// Checkout bills the current cart for the given customer. Fails with
	// billing.ErrEmptyCart when there is nothing to bill; the cart and the
	// output directory are untouched in that case.
	Checkout(ctx context.Context, customer billing.Customer) (*CheckoutResult, error)
}

// CheckoutResult is the receipt plus where it was saved.
type CheckoutResult struct {
	Receipt *billing.Receipt
	Path    string
}
