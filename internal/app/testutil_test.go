package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
)

// fakeCatalogStore is an in-memory secondary.CatalogStore.
type fakeCatalogStore struct {
	records []catalog.Record
	present bool
	seeded  [][]catalog.Record
}

func (f *fakeCatalogStore) Load(ctx context.Context) ([]catalog.Record, error) {
	return f.records, nil
}

func (f *fakeCatalogStore) Exists(ctx context.Context) (bool, error) {
	return f.present, nil
}

func (f *fakeCatalogStore) Seed(ctx context.Context, records []catalog.Record) error {
	f.records = records
	f.present = true
	f.seeded = append(f.seeded, records)
	return nil
}

// fakeCartStore is an in-memory secondary.CartStore tracking calls.
type fakeCartStore struct {
	records    []cart.Record
	present    bool
	saveCalls  int
	clearCalls int
	failSave   error
}

func (f *fakeCartStore) Load(ctx context.Context) ([]cart.Record, error) {
	return f.records, nil
}

func (f *fakeCartStore) Exists(ctx context.Context) (bool, error) {
	return f.present, nil
}

func (f *fakeCartStore) Save(ctx context.Context, records []cart.Record) error {
	if f.failSave != nil {
		return f.failSave
	}
	f.records = records
	f.present = true
	f.saveCalls++
	return nil
}

func (f *fakeCartStore) Clear(ctx context.Context) error {
	f.records = nil
	f.present = true
	f.clearCalls++
	return nil
}

// fakeReceiptStore is an in-memory secondary.ReceiptStore.
type fakeReceiptStore struct {
	written map[string]string
	fail    error
}

func (f *fakeReceiptStore) Write(ctx context.Context, trackingID, content string) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	if f.written == nil {
		f.written = make(map[string]string)
	}
	f.written[trackingID] = content
	return "output/bill_" + trackingID + ".txt", nil
}

// fakeInstructionsStore is an in-memory secondary.InstructionsStore.
type fakeInstructionsStore struct {
	text    string
	ensured int
}

func (f *fakeInstructionsStore) EnsureDefault(ctx context.Context) error {
	f.ensured++
	if f.text == "" {
		f.text = "Welcome to Chemist 4 U"
	}
	return nil
}

func (f *fakeInstructionsStore) Read(ctx context.Context) (string, error) {
	if f.text == "" {
		return "", errors.New("instructions missing")
	}
	return f.text, nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func seededCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{records: catalog.Seed(), present: true}
}

func cartRecord(id, name, cost, qty string) cart.Record {
	return cart.Record{
		Record:   catalog.Record{ID: id, Name: name, Intensity: "500mg", Disease: "Fever", Cost: cost},
		Quantity: qty,
	}
}
