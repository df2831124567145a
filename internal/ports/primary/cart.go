package primary

import (
	"context"

	"github.com/example/chemist4u/internal/core/cart"
)

// CartService owns the persisted cart. Every mutating operation persists
// before returning; there is no in-memory-only mode.
type CartService interface {
	// View returns the cart entries in insertion order.
	View(ctx context.Context) ([]cart.Entry, error)

	// Add merges quantity of the given product into the cart. Fails with
	// cart.ErrInvalidQuantity for non-positive quantities and
	// catalog.ErrNotFound for unknown product IDs.
	Add(ctx context.Context, productID, quantity int) (*AddResult, error)

	// Remove deletes quantity of the given product from the cart. Removing
	// at least the current quantity drops the line entirely. Fails with
	// cart.ErrNotFound when the ID is not in the cart; the cart is unchanged.
	Remove(ctx context.Context, productID, quantity int) (*RemoveResult, error)

	// Clear empties the cart, leaving only the header row persisted.
	Clear(ctx context.Context) error
}

// AddResult describes the cart line after an add.
type AddResult struct {
	Entry  cart.Entry
	Merged bool // true when an existing line absorbed the quantity
}

// RemoveResult describes the outcome of a removal.
type RemoveResult struct {
	Name       string
	RemovedAll bool
	Remaining  int // remaining quantity when RemovedAll is false
}
