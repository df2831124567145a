package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/chemist4u/internal/cli"
	"github.com/example/chemist4u/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "chemist",
		Short:   "Chemist 4 U - terminal pharmacy ordering",
		Version: version.String(),
		Long: `Chemist 4 U is a terminal tool for ordering medicines: browse the
catalog, search by disease, build a cart, and produce a cash-on-delivery
bill saved as a receipt file.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.InstructionsCmd())
	rootCmd.AddCommand(cli.OrderCmd())
	rootCmd.AddCommand(cli.MedicinesCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.CartCmd())
	rootCmd.AddCommand(cli.BillCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
