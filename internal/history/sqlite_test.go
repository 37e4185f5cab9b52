package history

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Init(t *testing.T) {
	store := newTestSQLiteStore(t)

	if _, err := os.Stat(store.dbPath); os.IsNotExist(err) {
		t.Error("database file not created")
	}
}

func TestSQLiteStore_EmptyLoad(t *testing.T) {
	store := newTestSQLiteStore(t)

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty sequence, got %d records", len(records))
	}
}

func TestSQLiteStore_AppendLoadRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	want := sampleRecord(3)
	if err := store.Append(want); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0] != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", records[0], want)
	}
}

func TestSQLiteStore_PreservesOrder(t *testing.T) {
	store := newTestSQLiteStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Append(sampleRecord(i)); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	for i, r := range records {
		if r != sampleRecord(i) {
			t.Errorf("record %d out of order or mutated: %+v", i, r)
		}
	}
}

func TestSQLiteStore_CorruptRow(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.Append(sampleRecord(0)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Write a row the record parser cannot rebuild.
	if _, err := store.db.Exec(`
		INSERT INTO sleep_entries (
			date, bedtime, wake_time, stress_level, screen_time_minutes,
			caffeine_servings, exercise_minutes, mood, interruptions,
			sleep_duration_hours, quality
		) VALUES ('2026-08-15', '23:00', '07:00', 2, 20, 0, 30, 'NotAMood', 0, 8, 'Good')
	`); err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	_, err := store.LoadAll()
	if err == nil {
		t.Fatal("expected error for corrupt row")
	}
	if _, ok := err.(*CorruptionError); !ok {
		t.Errorf("expected *CorruptionError, got %T", err)
	}
}

func TestSQLiteStore_OperationsAfterFailedInit(t *testing.T) {
	// The parent "directory" is a regular file, so the store can never
	// initialize its database.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewSQLiteStore(filepath.Join(blocker, "history.db"))
	if err := store.Init(); err == nil {
		t.Fatal("expected Init to fail under a regular file")
	}

	// Later operations must keep reporting the failure, not panic.
	err := store.Append(sampleRecord(0))
	if err == nil {
		t.Fatal("expected Append to fail after failed Init")
	}
	if _, ok := err.(*StorageError); !ok {
		t.Errorf("expected *StorageError from Append, got %T", err)
	}

	_, err = store.LoadAll()
	if err == nil {
		t.Fatal("expected LoadAll to fail after failed Init")
	}
	if _, ok := err.(*StorageError); !ok {
		t.Errorf("expected *StorageError from LoadAll, got %T", err)
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close on an uninitialized store failed: %v", err)
	}
}

func TestSQLiteStore_InitRetriesAfterFailure(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewSQLiteStore(filepath.Join(blocker, "history.db"))
	if err := store.Init(); err == nil {
		t.Fatal("expected Init to fail under a regular file")
	}

	// Clear the obstruction; the next Init attempt must succeed.
	if err := os.Remove(blocker); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("Init after clearing obstruction failed: %v", err)
	}
	defer store.Close()

	if err := store.Append(sampleRecord(0)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestSQLiteStore_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first := NewSQLiteStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := first.Append(sampleRecord(0)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	first.Close()

	// Reopen: migrations rerun against the existing schema.
	second := NewSQLiteStore(path)
	if err := second.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer second.Close()

	records, err := second.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after reopen, got %d", len(records))
	}
}
