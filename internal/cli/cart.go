package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/wire"
)

// CartCmd manages the cart.
func CartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "View and manage the shopping cart",
	}

	cmd.AddCommand(cartShowCmd())
	cmd.AddCommand(cartAddCmd())
	cmd.AddCommand(cartRemoveCmd())
	cmd.AddCommand(cartClearCmd())
	return cmd
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show cart contents and total",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			_, err := wire.CartAdapter().Show(cmd.Context())
			return err
		},
	}
}

func cartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [id] [quantity]",
		Short: "Add a quantity of a medicine to the cart",
		Long:  `Add a medicine to the cart by catalog ID. Adding an ID already in the cart increases its quantity instead of creating a second line.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			return wire.CartAdapter().Add(cmd.Context(), id, qty)
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id] [quantity]",
		Short: "Remove a quantity of a medicine from the cart",
		Long:  `Remove a quantity of a medicine from the cart. Removing at least the current quantity deletes the line entirely.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			return wire.CartAdapter().Remove(cmd.Context(), id, qty)
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			return wire.CartAdapter().Clear(cmd.Context())
		},
	}
}
