package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/chemist4u/internal/core/catalog"
	"github.com/example/chemist4u/internal/ports/secondary"
)

// BootstrapServiceImpl implements primary.BootstrapService: first-run
// creation of the data layout.
type BootstrapServiceImpl struct {
	catalogStore secondary.CatalogStore
	cartStore    secondary.CartStore
	instructions secondary.InstructionsStore
	log          zerolog.Logger
}

// NewBootstrapService creates a BootstrapService with injected dependencies.
func NewBootstrapService(catalogStore secondary.CatalogStore, cartStore secondary.CartStore, instructions secondary.InstructionsStore, log zerolog.Logger) *BootstrapServiceImpl {
	return &BootstrapServiceImpl{
		catalogStore: catalogStore,
		cartStore:    cartStore,
		instructions: instructions,
		log:          log,
	}
}

// Ensure seeds the default catalog when the store is absent, writes the cart
// header when the cart is absent, and writes the default instructions.
// Idempotent: existing files are never overwritten.
func (s *BootstrapServiceImpl) Ensure(ctx context.Context) error {
	exists, err := s.catalogStore.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.catalogStore.Seed(ctx, catalog.Seed()); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		s.log.Info().Msg("seeded default catalog")
	}

	exists, err = s.cartStore.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.cartStore.Clear(ctx); err != nil {
			return fmt.Errorf("failed to create cart store: %w", err)
		}
		s.log.Info().Msg("created empty cart store")
	}

	if err := s.instructions.EnsureDefault(ctx); err != nil {
		return err
	}
	return nil
}
