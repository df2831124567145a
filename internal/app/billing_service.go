package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/chemist4u/internal/core/billing"
	"github.com/example/chemist4u/internal/ports/primary"
	"github.com/example/chemist4u/internal/ports/secondary"
)

// BillingServiceImpl implements primary.BillingService.
type BillingServiceImpl struct {
	cartStore secondary.CartStore
	receipts  secondary.ReceiptStore
	log       zerolog.Logger
}

// NewBillingService creates a BillingService with injected dependencies.
func NewBillingService(cartStore secondary.CartStore, receipts secondary.ReceiptStore, log zerolog.Logger) *BillingServiceImpl {
	return &BillingServiceImpl{cartStore: cartStore, receipts: receipts, log: log}
}

// Checkout snapshots the cart into a receipt, writes the bill file, then
// clears the cart. An empty cart refuses checkout with billing.ErrEmptyCart
// and leaves every file untouched. A write failure after the receipt file is
// created has no rollback: the error propagates and ends the session.
func (s *BillingServiceImpl) Checkout(ctx context.Context, customer billing.Customer) (*primary.CheckoutResult, error) {
	entries, err := loadEntries(ctx, s.cartStore, s.log)
	if err != nil {
		return nil, err
	}

	receipt, err := billing.Build(customer, entries, billing.NewTrackingID())
	if err != nil {
		return nil, err
	}

	path, err := s.receipts.Write(ctx, receipt.TrackingID, receipt.Render())
	if err != nil {
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	if err := s.cartStore.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	s.log.Info().
		Str("tracking_id", receipt.TrackingID).
		Str("total", receipt.Total.StringFixed(2)).
		Int("lines", len(receipt.Lines)).
		Msg("checkout complete")

	return &primary.CheckoutResult{Receipt: receipt, Path: path}, nil
}
