package primary

import (
	"context"

	"github.com/example/chemist4u/internal/core/billing"
	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
)

// OrderState is the position of an order session in the workflow.
type OrderState string

const (
	// StateSearching awaits an ailment search term.
	StateSearching OrderState = "searching"
	// StateReviewingResults awaits a product choice from the last search.
	StateReviewingResults OrderState = "reviewing_results"
	// StateChoosingQuantity awaits a quantity for the chosen product.
	StateChoosingQuantity OrderState = "choosing_quantity"
	// StatePostAddDecision awaits bill / view-cart / main-menu after an add.
	StatePostAddDecision OrderState = "post_add_decision"
	// StateViewingCart awaits bill / delete / main-menu while showing the cart.
	StateViewingCart OrderState = "viewing_cart"
	// StateDeleting is the deletion sub-flow, looping until the user stops.
	StateDeleting OrderState = "deleting"
	// StateDone is terminal: control returns to the caller.
	StateDone OrderState = "done"
)

// Decision is a validated menu choice inside the workflow.
type Decision string

const (
	DecisionBill     Decision = "bill"
	DecisionViewCart Decision = "viewcart"
	DecisionDelete   Decision = "delete"
	DecisionMainMenu Decision = "mainmenu"
)

// OrderWorkflow sequences search → add-to-cart → delete → checkout. It holds
// no business logic of its own; it directs the catalog, cart, and billing
// services and enforces one hard contract: checkout is never invoked with an
// empty cart (cart state is re-checked immediately before billing).
type OrderWorkflow interface {
	// State returns the current workflow state.
	State() OrderState

	// Results returns the product candidates from the last search.
	Results() *SearchResult

	// Chosen returns the product selected for quantity entry, if any.
	Chosen() *catalog.Product

	// Search looks up products for an ailment. On exact matches the workflow
	// moves to reviewing; otherwise it stays searching with approximate
	// suggestions available through Results.
	Search(ctx context.Context, ailment string) error

	// ChooseProduct selects a product by ID from the search results, falling
	// back to the whole catalog. ID 0 cancels back to searching. Fails with
	// catalog.ErrNotFound for unknown IDs.
	ChooseProduct(ctx context.Context, productID int) error

	// SetQuantity adds the chosen product to the cart and moves to the
	// post-add decision. Fails with cart.ErrInvalidQuantity for
	// non-positive quantities, leaving the workflow awaiting a retry.
	SetQuantity(ctx context.Context, quantity int) (*AddResult, error)

	// Decide applies a menu decision valid for the current state.
	Decide(decision Decision) error

	// CartEntries returns the persisted cart for display.
	CartEntries(ctx context.Context) ([]cart.Entry, error)

	// Delete removes quantity of a product within the deletion sub-flow.
	Delete(ctx context.Context, productID, quantity int) (*RemoveResult, error)

	// Checkout re-checks that the cart is non-empty and bills it. Fails with
	// billing.ErrEmptyCart otherwise; the workflow ends either way only on
	// success.
	Checkout(ctx context.Context, customer billing.Customer) (*CheckoutResult, error)
}
