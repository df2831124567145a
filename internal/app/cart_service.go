package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/ports/primary"
	"github.com/example/chemist4u/internal/ports/secondary"
)

// CartServiceImpl implements primary.CartService. The persisted file and the
// in-memory entries are kept in sync by persisting after every mutation.
type CartServiceImpl struct {
	store   secondary.CartStore
	catalog primary.CatalogService
	log     zerolog.Logger
}

// NewCartService creates a CartService with injected dependencies.
func NewCartService(store secondary.CartStore, catalogSvc primary.CatalogService, log zerolog.Logger) *CartServiceImpl {
	return &CartServiceImpl{store: store, catalog: catalogSvc, log: log}
}

// View returns the cart entries in insertion order.
func (s *CartServiceImpl) View(ctx context.Context) ([]cart.Entry, error) {
	return loadEntries(ctx, s.store, s.log)
}

// Add merges quantity of the product into the cart and persists.
func (s *CartServiceImpl) Add(ctx context.Context, productID, quantity int) (*primary.AddResult, error) {
	if quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	entries, err := loadEntries(ctx, s.store, s.log)
	if err != nil {
		return nil, err
	}

	_, merged := cart.Find(entries, productID)
	entries = cart.AddOrMerge(entries, *product, quantity)
	if err := s.persist(ctx, entries); err != nil {
		return nil, err
	}

	entry, _ := cart.Find(entries, productID)
	return &primary.AddResult{Entry: entry, Merged: merged}, nil
}

// Remove deletes quantity of the product from the cart and persists. The
// cart is untouched when the ID is absent.
func (s *CartServiceImpl) Remove(ctx context.Context, productID, quantity int) (*primary.RemoveResult, error) {
	if quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	entries, err := loadEntries(ctx, s.store, s.log)
	if err != nil {
		return nil, err
	}

	before, ok := cart.Find(entries, productID)
	if !ok {
		return nil, cart.ErrNotFound
	}

	entries, err = cart.RemoveQuantity(entries, productID, quantity)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, entries); err != nil {
		return nil, err
	}

	after, stillThere := cart.Find(entries, productID)
	result := &primary.RemoveResult{Name: before.Product.Name, RemovedAll: !stillThere}
	if stillThere {
		result.Remaining = after.Quantity
	}
	return result, nil
}

// Clear empties the cart, leaving only the header persisted.
func (s *CartServiceImpl) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartServiceImpl) persist(ctx context.Context, entries []cart.Entry) error {
	records := make([]cart.Record, len(entries))
	for i, e := range entries {
		records[i] = e.Record()
	}
	if err := s.store.Save(ctx, records); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// loadEntries reads and leniently parses the persisted cart. Shared with the
// billing service, which reads the cart directly at checkout time.
func loadEntries(ctx context.Context, store secondary.CartStore, log zerolog.Logger) ([]cart.Entry, error) {
	records, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	entries := make([]cart.Entry, 0, len(records))
	for _, rec := range records {
		entry, defaulted := cart.Parse(rec)
		if len(defaulted) > 0 {
			log.Warn().
				Str("store", "cart").
				Str("id", rec.ID).
				Strs("fields", defaulted).
				Msg("malformed fields defaulted")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
