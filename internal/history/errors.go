package history

import "fmt"

// StorageError wraps an I/O failure against the history store.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("history storage failed (%s %s): %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// CorruptionError reports a stored record that cannot be parsed back.
type CorruptionError struct {
	Path   string
	Line   int
	Reason string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("corrupt history record at %s line %d: %s", e.Path, e.Line, e.Reason)
}

// errFieldCount builds the reason used when a row has the wrong width.
func errFieldCount(got int) error {
	return fmt.Errorf("expected %d fields, got %d", len(columns), got)
}
