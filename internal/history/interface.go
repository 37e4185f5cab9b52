package history

import "strings"

// Store defines the interface for the persisted sleep history.
type Store interface {
	// Init prepares the backing file or database for use.
	Init() error

	// Append durably adds one record, preserving insertion order. A single
	// append is atomic; atomicity across multiple appends is not guaranteed.
	Append(record Record) error

	// LoadAll returns every stored record in original append order. An empty
	// store yields an empty slice, not an error.
	LoadAll() ([]Record, error)

	// Close releases the underlying resources.
	Close() error
}

// Open selects a backend from the history path: ".db" paths use SQLite,
// everything else uses the delimited-text file.
func Open(path string) Store {
	if strings.HasSuffix(strings.ToLower(path), ".db") {
		return NewSQLiteStore(path)
	}
	return NewCSVStore(path)
}
