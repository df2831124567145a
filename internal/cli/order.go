package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/core/billing"
	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
	"github.com/example/chemist4u/internal/ports/primary"
	"github.com/example/chemist4u/internal/wire"
)

// OrderCmd runs the interactive order workflow: search by disease, add to
// cart, optionally delete, then bill.
func OrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Place an order interactively",
		Long: `Search medicines by disease, add them to the cart by ID and quantity,
review or trim the cart, and finish with a cash-on-delivery bill. Enter
'back' at the search prompt to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			return runOrder(cmd)
		},
	}
}

// runOrder drives one workflow session per add: the outer loop restarts the
// workflow after each completed pass until the user leaves the order screen.
func runOrder(cmd *cobra.Command) error {
	p := newPrompter()
	for {
		done, err := orderPass(cmd, p)
		if err != nil || done {
			return err
		}
	}
}

// orderPass runs a single search → add → decide pass. It reports done=true
// when the user leaves the order screen entirely.
func orderPass(cmd *cobra.Command, p *prompter) (done bool, err error) {
	ctx := cmd.Context()
	wf := wire.OrderWorkflow()

	// Search until we have exact matches to review.
	for wf.State() == primary.StateSearching {
		term, err := p.line("Enter disease to search (or 'back' to return)")
		if err != nil {
			return true, err
		}
		if strings.EqualFold(term, "back") {
			return true, nil
		}
		if err := wf.Search(ctx, term); err != nil {
			return true, err
		}
		wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).RenderSearch(wf.Results())
	}

	// Choose a product; 0 cancels back to searching.
	for wf.State() == primary.StateReviewingResults {
		id, err := p.productID("Enter ID to add to cart (0 to cancel)")
		if err != nil {
			return true, err
		}
		if err := wf.ChooseProduct(ctx, id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Println("Invalid ID.")
				continue
			}
			return true, err
		}
		if id == 0 {
			return false, nil
		}
	}

	qty, err := p.quantity(fmt.Sprintf("Enter quantity of %s to add", wf.Chosen().Name))
	if err != nil {
		return true, err
	}
	added, err := wf.SetQuantity(ctx, qty)
	if err != nil {
		return true, err
	}
	fmt.Printf("✓ Added %d x %s to cart!\n", qty, added.Entry.Product.Name)

	return postAddFlow(cmd, p, wf)
}

// postAddFlow handles the decision tree after an add: bill now, manage the
// cart (with the deletion sub-flow), or return to the shell.
func postAddFlow(cmd *cobra.Command, p *prompter, wf primary.OrderWorkflow) (bool, error) {
	ctx := cmd.Context()

	d, err := p.decision("What next? [B]illing / [C]art / [M]ain menu", primary.DecisionBill, primary.DecisionViewCart, primary.DecisionMainMenu)
	if err != nil {
		return true, err
	}
	if err := wf.Decide(d); err != nil {
		return true, err
	}

	switch d {
	case primary.DecisionBill:
		return true, checkout(cmd, p, wf)
	case primary.DecisionMainMenu:
		return true, nil
	}

	// Viewing the cart.
	entries, err := wire.CartAdapterWithOutput(cmd.OutOrStdout()).Show(ctx)
	if err != nil {
		return true, err
	}
	if len(entries) == 0 {
		return true, nil
	}

	d, err = p.decision("Options: [B]ill now / [D]elete item / [M]ain menu", primary.DecisionBill, primary.DecisionDelete, primary.DecisionMainMenu)
	if err != nil {
		return true, err
	}
	if err := wf.Decide(d); err != nil {
		return true, err
	}

	switch d {
	case primary.DecisionBill:
		return true, checkout(cmd, p, wf)
	case primary.DecisionMainMenu:
		return true, nil
	}

	if err := deleteFlow(cmd, p, wf); err != nil {
		return true, err
	}

	// After cart changes: bill or leave. Checkout re-checks emptiness.
	d, err = p.decision("After cart changes: [B]ill now or [M]ain menu", primary.DecisionBill, primary.DecisionMainMenu)
	if err != nil {
		return true, err
	}
	if err := wf.Decide(d); err != nil {
		return true, err
	}
	if d == primary.DecisionBill {
		return true, checkout(cmd, p, wf)
	}
	return true, nil
}

// deleteFlow loops deleting quantities until the user declines to continue
// or the cart empties.
func deleteFlow(cmd *cobra.Command, p *prompter, wf primary.OrderWorkflow) error {
	ctx := cmd.Context()

	for {
		entries, err := wf.CartEntries(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Cart is empty. Nothing to delete.")
			return nil
		}

		id, err := p.productID("Enter ID of medicine to delete (0 to cancel)")
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		entry, ok := cart.Find(entries, id)
		if !ok {
			fmt.Println("Medicine ID not found in cart.")
			continue
		}

		fmt.Printf("Current quantity of %s: %d\n", entry.Product.Name, entry.Quantity)
		qty, err := p.quantity(fmt.Sprintf("Enter how many to delete (1-%d)", entry.Quantity))
		if err != nil {
			return err
		}

		result, err := wf.Delete(ctx, id, qty)
		if err != nil {
			if errors.Is(err, cart.ErrNotFound) {
				fmt.Println("Medicine ID not found in cart.")
				continue
			}
			return err
		}
		if result.RemovedAll {
			fmt.Printf("Removed all %s from cart.\n", result.Name)
		} else {
			fmt.Printf("Removed %d of %s. Remaining: %d\n", qty, result.Name, result.Remaining)
		}

		entries, err = wf.CartEntries(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Cart is now empty.")
			return nil
		}

		more, err := p.yesNo("Delete another item?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// checkout prompts for customer details and bills through the workflow,
// which re-checks that the cart is non-empty first.
func checkout(cmd *cobra.Command, p *prompter, wf primary.OrderWorkflow) error {
	customer := billing.Customer{}
	var err error
	if customer.Name, err = p.line("Name"); err != nil {
		return err
	}
	if customer.Address, err = p.line("Address"); err != nil {
		return err
	}
	if customer.Phone, err = p.line("Phone"); err != nil {
		return err
	}

	result, err := wf.Checkout(cmd.Context(), customer)
	if errors.Is(err, billing.ErrEmptyCart) {
		fmt.Println("Cart is empty; cannot bill.")
		return nil
	}
	if err != nil {
		return err
	}

	wire.BillingAdapterWithOutput(cmd.OutOrStdout()).Render(result)
	return nil
}
