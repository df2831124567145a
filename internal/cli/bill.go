package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/core/billing"
	"github.com/example/chemist4u/internal/wire"
)

// BillCmd checks out the cart and saves the bill.
func BillCmd() *cobra.Command {
	var name, address, phone string

	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Bill the cart and save the receipt",
		Long: `Produce a cash-on-delivery bill for the current cart. The receipt is
saved in the output directory keyed by its tracking ID and the cart is
emptied. Customer details are prompted for unless passed as flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}

			customer := billing.Customer{Name: name, Address: address, Phone: phone}
			p := newPrompter()
			var err error
			if customer.Name == "" {
				if customer.Name, err = p.line("Name"); err != nil {
					return err
				}
			}
			if customer.Address == "" {
				if customer.Address, err = p.line("Address"); err != nil {
					return err
				}
			}
			if customer.Phone == "" {
				if customer.Phone, err = p.line("Phone"); err != nil {
					return err
				}
			}

			_, err = wire.BillingAdapter().Checkout(cmd.Context(), customer)
			if errors.Is(err, billing.ErrEmptyCart) {
				fmt.Println("Cart is empty! Add items before billing.")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&address, "address", "", "Delivery address")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	return cmd
}
