package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/wire"
)

// MedicinesCmd lists the catalog.
func MedicinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "medicines",
		Aliases: []string{"store"},
		Short:   "List all medicines in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			return wire.CatalogAdapter().List(cmd.Context())
		},
	}
}

// SearchCmd searches the catalog by ailment.
func SearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [disease]",
		Short: "Search medicines by disease",
		Long:  `Search the catalog by disease. Matching is case-insensitive and exact; when nothing matches exactly, substring matches are shown as approximate suggestions.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureData(cmd); err != nil {
				return err
			}
			_, err := wire.CatalogAdapter().Search(cmd.Context(), args[0])
			return err
		},
	}
}
