// Package cart contains the pure business logic for the shopping cart: the
// Entry model and the merge/remove rules. Persistence lives behind the
// secondary CartStore port; callers mutate with these functions and persist
// the result.
package cart

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/example/chemist4u/internal/core/catalog"
)

var (
	// ErrNotFound indicates the product ID is not present in the cart.
	ErrNotFound = errors.New("product not found in cart")

	// ErrInvalidQuantity indicates a non-positive or unparsable quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Entry is one cart line: a product plus a positive quantity. The cart holds
// at most one Entry per product ID.
type Entry struct {
	Product  catalog.Product
	Quantity int
}

// Record is a raw cart row as persisted: the product fields plus quantity.
type Record struct {
	catalog.Record
	Quantity string
}

// Subtotal returns unit cost times quantity.
func (e Entry) Subtotal() decimal.Decimal {
	return e.Product.Cost.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Record converts the entry back to its persisted shape.
func (e Entry) Record() Record {
	return Record{
		Record:   e.Product.Record(),
		Quantity: strconv.Itoa(e.Quantity),
	}
}

// Parse coerces a raw cart record into an Entry. Product fields follow
// catalog.Parse; an unparsable quantity defaults to 1. Defaulted field names
// are returned for data-quality reporting.
func Parse(rec Record) (Entry, []string) {
	product, defaulted := catalog.Parse(rec.Record)

	qty, err := strconv.Atoi(rec.Quantity)
	if err != nil {
		qty = 1
		defaulted = append(defaulted, "quantity")
	}

	return Entry{Product: product, Quantity: qty}, defaulted
}

// AddOrMerge adds quantity of a product to the entries. If an entry with the
// same product ID exists its quantity grows by qty; otherwise a new entry is
// appended, keeping insertion order. A non-positive qty is a no-op.
func AddOrMerge(entries []Entry, product catalog.Product, qty int) []Entry {
	if qty <= 0 {
		return entries
	}

	for i := range entries {
		if entries[i].Product.ID == product.ID {
			entries[i].Quantity += qty
			return entries
		}
	}
	return append(entries, Entry{Product: product, Quantity: qty})
}

// RemoveQuantity removes amount of the given product ID. Removing at least
// the current quantity drops the entry entirely; an entry never survives with
// quantity below 1. Returns ErrNotFound, with entries unchanged, when the ID
// is absent.
func RemoveQuantity(entries []Entry, productID, amount int) ([]Entry, error) {
	for i := range entries {
		if entries[i].Product.ID != productID {
			continue
		}
		if amount >= entries[i].Quantity {
			return append(entries[:i:i], entries[i+1:]...), nil
		}
		entries[i].Quantity -= amount
		return entries, nil
	}
	return entries, ErrNotFound
}

// Find returns the entry for the given product ID, if present.
func Find(entries []Entry, productID int) (Entry, bool) {
	for _, e := range entries {
		if e.Product.ID == productID {
			return e, true
		}
	}
	return Entry{}, false
}

// Total returns the sum of entry subtotals.
func Total(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Subtotal())
	}
	return total
}
