// Package cli provides thin CLI adapters that translate between terminal
// output and the application services. Adapters format results for display
// but delegate all business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/chemist4u/internal/core/catalog"
	"github.com/example/chemist4u/internal/ports/primary"
)

// CatalogAdapter renders catalog listings and search results.
type CatalogAdapter struct {
	service primary.CatalogService
	out     io.Writer
}

// NewCatalogAdapter creates a CatalogAdapter writing to out.
func NewCatalogAdapter(service primary.CatalogService, out io.Writer) *CatalogAdapter {
	return &CatalogAdapter{service: service, out: out}
}

// List prints the full catalog.
func (a *CatalogAdapter) List(ctx context.Context) error {
	products, err := a.service.List(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "No medicines in store.")
		return nil
	}
	printProducts(a.out, products)
	return nil
}

// Search prints exact matches for the ailment, or approximate suggestions
// when nothing matches exactly.
func (a *CatalogAdapter) Search(ctx context.Context, ailment string) (*primary.SearchResult, error) {
	result, err := a.service.Search(ctx, ailment)
	if err != nil {
		return nil, err
	}
	a.RenderSearch(result)
	return result, nil
}

// RenderSearch prints an already-fetched search result. The interactive
// order flow uses this to display the workflow's candidates without
// re-querying.
func (a *CatalogAdapter) RenderSearch(result *primary.SearchResult) {
	switch {
	case len(result.Exact) > 0:
		fmt.Fprintf(a.out, "Found %d medicine(s):\n", len(result.Exact))
		printProducts(a.out, result.Exact)
	case len(result.Approximate) > 0:
		fmt.Fprintln(a.out, "No medicines found for that disease (case-insensitive exact match).")
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Approximate matches based on substring in disease:"))
		printProducts(a.out, result.Approximate)
	default:
		fmt.Fprintln(a.out, "No medicines found for that disease.")
	}
}

func printProducts(out io.Writer, products []catalog.Product) {
	fmt.Fprintf(out, "\n%-5s %-20s %-10s %-16s %10s\n", "ID", "NAME", "INTENSITY", "DISEASE", "COST")
	fmt.Fprintln(out, "────────────────────────────────────────────────────────────────")
	for _, p := range products {
		fmt.Fprintf(out, "%-5d %-20s %-10s %-16s ₹%9s\n",
			p.ID, p.Name, p.Intensity, p.Disease, p.Cost.StringFixed(2))
	}
	fmt.Fprintln(out)
}
