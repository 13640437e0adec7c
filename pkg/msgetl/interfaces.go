package msgetl

import "context"

// Loader reads the two input files and returns their inner join.
type Loader interface {
	// Load reads both CSV files and joins them on the key column.
	Load(ctx context.Context, messagesPath, categoriesPath string) (*Table, error)
}

// Cleaner turns the joined table into the analysis-ready table.
type Cleaner interface {
	// Clean expands the packed categories and removes invalid and duplicate rows.
	// The input table is not modified.
	Clean(table *Table) (*Table, error)
}

// Store persists tables. Implementations are not safe for concurrent writers.
type Store interface {
	// WriteTable replaces the named table with the given contents.
	// On failure the previous contents are left in place.
	WriteTable(ctx context.Context, name string, table *Table) error

	// ReadTable returns every row of the named table.
	ReadTable(ctx context.Context, name string) (*Table, error)

	// Close releases the underlying connection.
	Close() error
}

// StoreOpener opens the Store behind a destination string.
type StoreOpener func(ctx context.Context, destination string) (Store, error)

// Pipeline runs the load, clean and save stages in order.
type Pipeline interface {
	// Run executes one complete pipeline run.
	Run(ctx context.Context, config RunConfig) error
}
