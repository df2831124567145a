// Package secondary defines the secondary ports (driven adapters) for the
// application: the stores through which catalog, cart, and receipt state is
// persisted. All implementations write flat tabular text; there is no
// database engine and no locking — exactly one interactive session is
// assumed to own the data directory at a time.
package secondary

import (
	"context"

	"github.com/example/chemist4u/internal/core/cart"
	"github.com/example/chemist4u/internal/core/catalog"
)

// CatalogStore persists the medicine catalog. Read-only at runtime except
// for first-run seeding.
type CatalogStore interface {
	// Load reads all catalog records. A missing store yields an empty set,
	// not an error; rows with an empty ID field are skipped.
	Load(ctx context.Context) ([]catalog.Record, error)

	// Exists reports whether the backing store file is present.
	Exists(ctx context.Context) (bool, error)

	// Seed writes the given records as the full catalog, header first.
	Seed(ctx context.Context, records []catalog.Record) error
}

// CartStore persists the cart. Writes are full replacements: the complete
// entry set is rewritten, header first, in cart order.
type CartStore interface {
	// Load reads all cart records. A missing store yields an empty set, not
	// an error; rows with an empty ID field are skipped.
	Load(ctx context.Context) ([]cart.Record, error)

	// Exists reports whether the backing store file is present.
	Exists(ctx context.Context) (bool, error)

	// Save overwrites the store with the given records, header first.
	Save(ctx context.Context, records []cart.Record) error

	// Clear overwrites the store with only the header row.
	Clear(ctx context.Context) error
}

// ReceiptStore persists rendered bills, one durable file per checkout keyed
// by tracking ID. There is no rollback for a partially written receipt; write
// failures propagate and abort the session.
type ReceiptStore interface {
	// Write saves the rendered bill and returns the path it was written to.
	Write(ctx context.Context, trackingID, content string) (string, error)
}

// InstructionsStore persists the user help text shown by the instructions
// command.
type InstructionsStore interface {
	// EnsureDefault writes the default instructions if the file is absent.
	EnsureDefault(ctx context.Context) error

	// Read returns the instructions text.
	Read(ctx context.Context) (string, error)
}
