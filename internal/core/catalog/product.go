// Package catalog contains the pure business logic for the medicine catalog:
// the Product model, lenient record parsing, and ailment search.
package catalog

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates no catalog product carries the requested ID.
var ErrNotFound = errors.New("medicine not found in catalog")

// Product is a single catalog medicine. Immutable once loaded for a run.
type Product struct {
	ID        int
	Name      string
	Intensity string
	Disease   string
	Cost      decimal.Decimal
}

// Record is a raw catalog row as persisted, before coercion.
type Record struct {
	ID        string
	Name      string
	Intensity string
	Disease   string
	Cost      string
}

// Record converts the product back to its persisted shape.
func (p Product) Record() Record {
	return Record{
		ID:        strconv.Itoa(p.ID),
		Name:      p.Name,
		Intensity: p.Intensity,
		Disease:   p.Disease,
		Cost:      p.Cost.StringFixed(2),
	}
}

// Parse coerces a raw record into a Product. Malformed numeric fields are
// defaulted (ID to 0, Cost to 0.00) instead of failing the row; the names of
// defaulted fields are returned so callers can surface data-quality warnings.
// ID 0 is reserved: it can never be selected through the order workflow.
func Parse(rec Record) (Product, []string) {
	var defaulted []string

	id, err := strconv.Atoi(rec.ID)
	if err != nil {
		id = 0
		defaulted = append(defaulted, "id")
	}

	cost, err := decimal.NewFromString(rec.Cost)
	if err != nil {
		cost = decimal.Zero
		defaulted = append(defaulted, "cost")
	}

	return Product{
		ID:        id,
		Name:      rec.Name,
		Intensity: rec.Intensity,
		Disease:   rec.Disease,
		Cost:      cost,
	}, defaulted
}
