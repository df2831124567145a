package primary

import "context"

// BootstrapService prepares the data layout on first run: data and output
// directories, the seeded catalog, the cart header, and the instructions
// file. Ensure is idempotent and safe to call before every command.
type BootstrapService interface {
	Ensure(ctx context.Context) error
}

// DoctorService inspects the data layout and reports data-quality findings.
type DoctorService interface {
	Diagnose(ctx context.Context) (*DoctorReport, error)
}

// DoctorReport summarizes the state of the persisted stores.
type DoctorReport struct {
	CatalogPresent  bool
	CartPresent     bool
	CatalogProducts int
	CartEntries     int
	Findings        []Finding
}

// Finding is one data-quality observation, e.g. a row whose malformed fields
// were defaulted during parsing.
type Finding struct {
	Store     string // "catalog" or "cart"
	RowID     string // raw ID field of the affected row
	Defaulted []string
}
