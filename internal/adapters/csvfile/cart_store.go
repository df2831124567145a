package csvfile

import (
	"context"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
)

var cartHeader = []string{"id", "name", "intensity", "disease", "cost", "quantity"}

// CartStore implements secondary.CartStore over a CSV file.
type CartStore struct {
	path string
}

// NewCartStore creates a cart store backed by the given file.
func NewCartStore(path string) *CartStore {
	return &CartStore{path: path}
}

// Load reads all cart records in persisted order. Rows with an empty ID
// field are skipped.
func (s *CartStore) Load(ctx context.Context) ([]cart.Record, error) {
	index, rows, err := readRows(s.path)
	if err != nil {
		return nil, err
	}

	var records []cart.Record
	for _, row := range rows {
		id := field(row, index, "id")
		if id == "" {
			continue
		}
		records = append(records, cart.Record{
			Record: catalog.Record{
				ID:        id,
				Name:      field(row, index, "name"),
				Intensity: field(row, index, "intensity"),
				Disease:   field(row, index, "disease"),
				Cost:      field(row, index, "cost"),
			},
			Quantity: field(row, index, "quantity"),
		})
	}
	return records, nil
}

// Exists reports whether the store file is present.
func (s *CartStore) Exists(ctx context.Context) (bool, error) {
	return fileExists(s.path)
}

// Save overwrites the store with the records, header first, preserving the
// given order.
func (s *CartStore) Save(ctx context.Context, records []cart.Record) error {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{rec.ID, rec.Name, rec.Intensity, rec.Disease, rec.Cost, rec.Quantity}
	}
	return writeRows(s.path, cartHeader, rows)
}

// Clear overwrites the store with only the header row.
func (s *CartStore) Clear(ctx context.Context) error {
	return writeRows(s.path, cartHeader, nil)
}
