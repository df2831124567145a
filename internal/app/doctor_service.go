package app

import (
	"context"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
	"github.com/example/chemist4u/internal/ports/primary"
	"github.com/example/chemist4u/internal/ports/secondary"
)

// DoctorServiceImpl implements primary.DoctorService: it reparses both
// stores and reports every row whose malformed fields were defaulted, making
// the lenient-parse policy visible instead of silent.
type DoctorServiceImpl struct {
	catalogStore secondary.CatalogStore
	cartStore    secondary.CartStore
}

// NewDoctorService creates a DoctorService with injected dependencies.
func NewDoctorService(catalogStore secondary.CatalogStore, cartStore secondary.CartStore) *DoctorServiceImpl {
	return &DoctorServiceImpl{catalogStore: catalogStore, cartStore: cartStore}
}

// Diagnose inspects the data layout.
func (s *DoctorServiceImpl) Diagnose(ctx context.Context) (*primary.DoctorReport, error) {
	report := &primary.DoctorReport{}

	exists, err := s.catalogStore.Exists(ctx)
	if err != nil {
		return nil, err
	}
	report.CatalogPresent = exists

	catalogRecords, err := s.catalogStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	report.CatalogProducts = len(catalogRecords)
	for _, rec := range catalogRecords {
		if _, defaulted := catalog.Parse(rec); len(defaulted) > 0 {
			report.Findings = append(report.Findings, primary.Finding{
				Store:     "catalog",
				RowID:     rec.ID,
				Defaulted: defaulted,
			})
		}
	}

	exists, err = s.cartStore.Exists(ctx)
	if err != nil {
		return nil, err
	}
	report.CartPresent = exists

	cartRecords, err := s.cartStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	report.CartEntries = len(cartRecords)
	for _, rec := range cartRecords {
		if _, defaulted := cart.Parse(rec); len(defaulted) > 0 {
			report.Findings = append(report.Findings, primary.Finding{
				Store:     "cart",
				RowID:     rec.ID,
				Defaulted: defaulted,
			})
		}
	}

	return report, nil
}
