package app

import (
	"context"
	"fmt"

	"github.com/example/chemist4u/internal/core/billing"
	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
	"github.com/example/chemist4u/internal/ports/primary"
)

// OrderWorkflowImpl implements primary.OrderWorkflow. One instance drives one
// interactive order session; it sequences the services and holds no business
// logic beyond state transitions.
type OrderWorkflowImpl struct {
	catalog primary.CatalogService
	cart    primary.CartService
	billing primary.BillingService

	state   primary.OrderState
	results *primary.SearchResult
	chosen  *catalog.Product
}

// NewOrderWorkflow creates a workflow in the searching state.
func NewOrderWorkflow(catalogSvc primary.CatalogService, cartSvc primary.CartService, billingSvc primary.BillingService) *OrderWorkflowImpl {
	return &OrderWorkflowImpl{
		catalog: catalogSvc,
		cart:    cartSvc,
		billing: billingSvc,
		state:   primary.StateSearching,
	}
}

// State returns the current workflow state.
func (w *OrderWorkflowImpl) State() primary.OrderState {
	return w.state
}

// Results returns the candidates from the last search, if any.
func (w *OrderWorkflowImpl) Results() *primary.SearchResult {
	return w.results
}

// Chosen returns the product awaiting a quantity, if any.
func (w *OrderWorkflowImpl) Chosen() *catalog.Product {
	return w.chosen
}

// Search looks up products for the ailment. Exact matches move the workflow
// to reviewing; otherwise it stays searching and approximate suggestions are
// available through Results.
func (w *OrderWorkflowImpl) Search(ctx context.Context, ailment string) error {
	if err := w.require(primary.StateSearching); err != nil {
		return err
	}

	result, err := w.catalog.Search(ctx, ailment)
	if err != nil {
		return err
	}

	w.results = result
	if len(result.Exact) > 0 {
		w.state = primary.StateReviewingResults
	}
	return nil
}

// ChooseProduct selects a product by ID from the current results, falling
// back to the whole catalog for IDs outside the result set. ID 0 cancels
// back to searching.
func (w *OrderWorkflowImpl) ChooseProduct(ctx context.Context, productID int) error {
	if err := w.require(primary.StateReviewingResults); err != nil {
		return err
	}

	if productID == 0 {
		w.chosen = nil
		w.results = nil
		w.state = primary.StateSearching
		return nil
	}

	for _, p := range w.results.Exact {
		if p.ID == productID {
			w.chosen = &p
			w.state = primary.StateChoosingQuantity
			return nil
		}
	}

	product, err := w.catalog.Get(ctx, productID)
	if err != nil {
		return err
	}
	w.chosen = product
	w.state = primary.StateChoosingQuantity
	return nil
}

// SetQuantity adds the chosen product to the cart. Non-positive quantities
// fail with cart.ErrInvalidQuantity and leave the workflow awaiting a retry.
func (w *OrderWorkflowImpl) SetQuantity(ctx context.Context, quantity int) (*primary.AddResult, error) {
	if err := w.require(primary.StateChoosingQuantity); err != nil {
		return nil, err
	}

	result, err := w.cart.Add(ctx, w.chosen.ID, quantity)
	if err != nil {
		return nil, err
	}

	w.chosen = nil
	w.state = primary.StatePostAddDecision
	return result, nil
}

// Decide applies a menu decision. DecisionBill validates that billing is a
// legal next step but leaves the transition to Checkout, which re-checks the
// cart; the other decisions transition immediately.
func (w *OrderWorkflowImpl) Decide(decision primary.Decision) error {
	switch w.state {
	case primary.StatePostAddDecision:
		switch decision {
		case primary.DecisionBill:
			return nil
		case primary.DecisionViewCart:
			w.state = primary.StateViewingCart
			return nil
		case primary.DecisionMainMenu:
			w.state = primary.StateDone
			return nil
		}
	case primary.StateViewingCart:
		switch decision {
		case primary.DecisionBill:
			return nil
		case primary.DecisionDelete:
			w.state = primary.StateDeleting
			return nil
		case primary.DecisionMainMenu:
			w.state = primary.StateDone
			return nil
		}
	case primary.StateDeleting:
		switch decision {
		case primary.DecisionBill:
			return nil
		case primary.DecisionMainMenu:
			w.state = primary.StateDone
			return nil
		}
	}
	return fmt.Errorf("decision %q is not valid in state %q", decision, w.state)
}

// CartEntries returns the persisted cart for display.
func (w *OrderWorkflowImpl) CartEntries(ctx context.Context) ([]cart.Entry, error) {
	return w.cart.View(ctx)
}

// Delete removes quantity of a product within the deletion sub-flow.
func (w *OrderWorkflowImpl) Delete(ctx context.Context, productID, quantity int) (*primary.RemoveResult, error) {
	if err := w.require(primary.StateDeleting); err != nil {
		return nil, err
	}
	return w.cart.Remove(ctx, productID, quantity)
}

// Checkout re-checks that the cart is non-empty and bills it. The deletion
// sub-flow may have emptied the cart since the last display, so the check
// happens here, immediately before billing.
func (w *OrderWorkflowImpl) Checkout(ctx context.Context, customer billing.Customer) (*primary.CheckoutResult, error) {
	entries, err := w.cart.View(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, billing.ErrEmptyCart
	}

	result, err := w.billing.Checkout(ctx, customer)
	if err != nil {
		return nil, err
	}
	w.state = primary.StateDone
	return result, nil
}

func (w *OrderWorkflowImpl) require(state primary.OrderState) error {
	if w.state != state {
		return fmt.Errorf("operation not valid in state %q", w.state)
	}
	return nil
}
