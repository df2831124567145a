package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/wire"
)

// InstructionsCmd prints the store instructions.
func InstructionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instructions",
		Short: "Show how to use the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			text, err := wire.Instructions().Read(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(text)
			return nil
		},
	}
}
