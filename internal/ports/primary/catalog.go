// Package primary defines the primary ports (driving interfaces) for the
// application. CLI adapters depend only on these interfaces, never on the
// service implementations.
package primary

import (
	"context"

	"github.com/example/chemist4u/internal/core/catalog"
)

// CatalogService exposes the read-only medicine catalog.
type CatalogService interface {
	// List returns the full catalog in store order.
	List(ctx context.Context) ([]catalog.Product, error)

	// Get returns the product with the given ID.
	Get(ctx context.Context, productID int) (*catalog.Product, error)

	// Search looks up products by ailment: exact match first, substring
	// containment as a fallback when nothing matches exactly.
	Search(ctx context.Context, ailment string) (*SearchResult, error)
}

// SearchResult holds the outcome of an ailment search. Approximate is only
// populated when Exact is empty; approximate matches are suggestions and are
// never added to a cart directly.
type SearchResult struct {
	Exact       []catalog.Product
	Approximate []catalog.Product
}

// Empty reports whether the search produced no matches of either kind.
func (r *SearchResult) Empty() bool {
	return len(r.Exact) == 0 && len(r.Approximate) == 0
}
