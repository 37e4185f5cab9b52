/*
Package history tests cover both store backends: append/load round trips,
ordering, empty stores, and corruption reporting.
*/
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khanglvm/sleepwise/internal/sleep"
)

// sampleRecord returns a distinct record per index.
func sampleRecord(i int) Record {
	moods := sleep.MoodNames()
	return Record{
		Date: fmt.Sprintf("2026-08-%02d", i+1),
		Input: sleep.DailyInput{
			Bedtime:           sleep.TimeOfDay{Hour: 22, Minute: 30},
			WakeTime:          sleep.TimeOfDay{Hour: 6 + i%2},
			Stress:            1 + i%5,
			ScreenTimeMinutes: 15 * i,
			CaffeineServings:  i % 3,
			ExerciseMinutes:   10 * i,
			Mood:              sleep.Mood(i % len(moods)),
			Interruptions:     i % 2,
		},
		SleepDurationHours: 7.5 + float64(i%2),
		Quality:            sleep.Quality(i % 3),
	}
}

func TestCSVStore_EmptyLoad(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "history.csv"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty sequence, got %d records", len(records))
	}
	if records == nil {
		t.Error("expected non-nil empty slice")
	}
}

func TestCSVStore_AppendLoadRoundTrip(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "history.csv"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	want := sampleRecord(2)
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

func TestCSVStore_PreservesOrder(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "history.csv"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

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

func TestCSVStore_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	store := NewCSVStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.Append(sampleRecord(i)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got := strings.Count(string(data), "sleep_duration_hours"); got != 1 {
		t.Errorf("header appears %d times, want 1", got)
	}
}

func TestCSVStore_CorruptRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	store := NewCSVStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Append(sampleRecord(0)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := f.WriteString("not,a,valid,row\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	f.Close()

	_, err = store.LoadAll()
	if err == nil {
		t.Fatal("expected error for corrupt row")
	}
	if _, ok := err.(*CorruptionError); !ok {
		t.Errorf("expected *CorruptionError, got %T", err)
	}
}

func TestCSVStore_WrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewCSVStore(path)
	_, err := store.LoadAll()
	if err == nil {
		t.Fatal("expected error for wrong header")
	}
	if _, ok := err.(*CorruptionError); !ok {
		t.Errorf("expected *CorruptionError, got %T", err)
	}
}

func TestCSVStore_MissingDirectory(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "missing", "deeper", "history.csv"))

	// Append without Init: parent directory does not exist.
	err := store.Append(sampleRecord(0))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, ok := err.(*StorageError); !ok {
		t.Errorf("expected *StorageError, got %T", err)
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	if _, ok := Open("/tmp/history.db").(*SQLiteStore); !ok {
		t.Error("expected SQLite backend for .db path")
	}
	if _, ok := Open("/tmp/history.csv").(*CSVStore); !ok {
		t.Error("expected CSV backend for .csv path")
	}
	if _, ok := Open("/tmp/history.txt").(*CSVStore); !ok {
		t.Error("expected CSV backend for generic path")
	}
}
