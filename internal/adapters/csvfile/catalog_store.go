package csvfile

import (
	"context"

	"github.com/example/chemist4u/internal/core/catalog"
)

var catalogHeader = []string{"id", "name", "intensity", "disease", "cost"}

// CatalogStore implements secondary.CatalogStore over a CSV file.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a catalog store backed by the given file.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Load reads all catalog records. Rows with an empty ID field are skipped;
// everything else is returned raw for lenient parsing by the core.
func (s *CatalogStore) Load(ctx context.Context) ([]catalog.Record, error) {
	index, rows, err := readRows(s.path)
	if err != nil {
		return nil, err
	}

	var records []catalog.Record
	for _, row := range rows {
		id := field(row, index, "id")
		if id == "" {
			continue
		}
		records = append(records, catalog.Record{
			ID:        id,
			Name:      field(row, index, "name"),
			Intensity: field(row, index, "intensity"),
			Disease:   field(row, index, "disease"),
			Cost:      field(row, index, "cost"),
		})
	}
	return records, nil
}

// Exists reports whether the store file is present.
func (s *CatalogStore) Exists(ctx context.Context) (bool, error) {
	return fileExists(s.path)
}

// Seed writes the records as the full catalog.
func (s *CatalogStore) Seed(ctx context.Context, records []catalog.Record) error {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{rec.ID, rec.Name, rec.Intensity, rec.Disease, rec.Cost}
	}
	return writeRows(s.path, catalogHeader, rows)
}
