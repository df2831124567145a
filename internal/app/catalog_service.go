// Package app contains the application services implementing the primary
// ports. Services orchestrate the pure core packages and the secondary
// stores; they never render output themselves.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/chemist4u/internal/core/catalog"
	"github.com/example/chemist4u/internal/ports/primary"
	"github.com/example/chemist4u/internal/ports/secondary"
)

// CatalogServiceImpl implements primary.CatalogService.
type CatalogServiceImpl struct {
	store secondary.CatalogStore
	log   zerolog.Logger
}

// NewCatalogService creates a CatalogService with injected dependencies.
func NewCatalogService(store secondary.CatalogStore, log zerolog.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{store: store, log: log}
}

// List returns the full catalog in store order. Malformed numeric fields are
// defaulted by the lenient parser and logged as data-quality warnings, never
// raised.
func (s *CatalogServiceImpl) List(ctx context.Context) ([]catalog.Product, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	products := make([]catalog.Product, 0, len(records))
	for _, rec := range records {
		product, defaulted := catalog.Parse(rec)
		if len(defaulted) > 0 {
			s.log.Warn().
				Str("store", "catalog").
				Str("id", rec.ID).
				Strs("fields", defaulted).
				Msg("malformed fields defaulted")
		}
		products = append(products, product)
	}
	return products, nil
}

// Get returns the product with the given ID. ID 0 is reserved (it is the
// cancel sentinel in prompts and the lenient-parse default), so it is never
// resolvable even when a malformed row parsed to it.
func (s *CatalogServiceImpl) Get(ctx context.Context, productID int) (*catalog.Product, error) {
	if productID <= 0 {
		return nil, catalog.ErrNotFound
	}

	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == productID {
			return &p, nil
		}
	}
	return nil, catalog.ErrNotFound
}

// Search looks up products by ailment. Exact matches win; when there are
// none, substring containment supplies approximate suggestions.
func (s *CatalogServiceImpl) Search(ctx context.Context, ailment string) (*primary.SearchResult, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &primary.SearchResult{Exact: catalog.FindExact(products, ailment)}
	if len(result.Exact) == 0 {
		result.Approximate = catalog.FindApproximate(products, ailment)
	}
	return result, nil
}
