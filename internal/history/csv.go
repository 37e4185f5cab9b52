package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// CSVStore persists records as delimited text: one header line, then one row
// per record, append-only.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore creates a delimited-text store at the given path. The file is
// created lazily on first append.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Init ensures the parent directory exists.
func (s *CSVStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &StorageError{Path: s.path, Op: "init", Err: err}
	}
	return nil
}

// Append writes one record. The header plus the row (on a fresh file) or the
// row alone is encoded into a single buffer and handed to the kernel in one
// O_APPEND write, then synced, so a crash cannot leave a partial record.
func (s *CSVStore) Append(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &StorageError{Path: s.path, Op: "append", Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &StorageError{Path: s.path, Op: "append", Err: err}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if info.Size() == 0 {
		if err := w.Write(columns); err != nil {
			return &StorageError{Path: s.path, Op: "append", Err: err}
		}
	}
	if err := w.Write(record.row()); err != nil {
		return &StorageError{Path: s.path, Op: "append", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Path: s.path, Op: "append", Err: err}
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return &StorageError{Path: s.path, Op: "append", Err: err}
	}
	if err := f.Sync(); err != nil {
		return &StorageError{Path: s.path, Op: "append", Err: err}
	}

	return nil
}

// LoadAll reads every record in file order. A missing file is an empty store.
func (s *CSVStore) LoadAll() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "load", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is validated per record below

	records := []Record{}
	line := 0
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &CorruptionError{Path: s.path, Line: line, Reason: err.Error()}
		}

		if line == 1 {
			if !headerMatches(fields) {
				return nil, &CorruptionError{Path: s.path, Line: 1, Reason: fmt.Sprintf("unexpected header %v", fields)}
			}
			continue
		}

		record, err := parseRow(fields)
		if err != nil {
			return nil, &CorruptionError{Path: s.path, Line: line, Reason: err.Error()}
		}
		records = append(records, record)
	}

	return records, nil
}

// Close is a no-op; the file is opened per operation.
func (s *CSVStore) Close() error {
	return nil
}

// headerMatches checks the stored header against the fixed column set.
func headerMatches(fields []string) bool {
	if len(fields) != len(columns) {
		return false
	}
	for i, c := range columns {
		if fields[i] != c {
			return false
		}
	}
	return true
}
