package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/wire"
)

// InitCmd bootstraps the data layout.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the data directory",
		Long:  `Create the data and output directories, seed the default medicine catalog, and write the cart header and instructions. Existing files are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			if err := wire.BootstrapService().Ensure(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("✓ Data directory ready at %s\n", cfg.DataDir)
			fmt.Printf("✓ Bills will be saved in %s\n", cfg.OutputDir)
			return nil
		},
	}
}

// ensureData runs the idempotent bootstrap before data-touching commands.
func ensureData(cmd *cobra.Command) error {
	return wire.BootstrapService().Ensure(cmd.Context())
}
