package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// NewSQLiteStore creates a SQLite-backed store at the given path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{dbPath: path}
}

// Init opens the database and runs migrations. Safe to call more than once;
// a failed attempt is retried on the next call rather than cached.
func (s *SQLiteStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked()
}

// initLocked opens the database if it is not open yet. Callers hold s.mu.
func (s *SQLiteStore) initLocked() error {
	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return &StorageError{Path: s.dbPath, Op: "init", Err: err}
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return &StorageError{Path: s.dbPath, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return &StorageError{Path: s.dbPath, Op: "open", Err: err}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return &StorageError{Path: s.dbPath, Op: "migrate", Err: err}
	}

	s.db = db
	return nil
}

// migration is a single schema migration.
type migration struct {
	version int
	name    string
	query   string
}

// migrations are applied in order; the schema_migrations table records which
// have run.
var migrations = []migration{
	{
		version: 1,
		name:    "sleep_entries",
		query: `
			CREATE TABLE IF NOT EXISTS sleep_entries (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date TEXT NOT NULL,
				bedtime TEXT NOT NULL,
				wake_time TEXT NOT NULL,
				stress_level INTEGER NOT NULL,
				screen_time_minutes INTEGER NOT NULL,
				caffeine_servings INTEGER NOT NULL,
				exercise_minutes INTEGER NOT NULL,
				mood TEXT NOT NULL,
				interruptions INTEGER NOT NULL,
				sleep_duration_hours REAL NOT NULL,
				quality TEXT NOT NULL
			)
		`,
	},
	{
		version: 2,
		name:    "sleep_entries_date_index",
		query: `
			CREATE INDEX IF NOT EXISTS idx_sleep_entries_date
			ON sleep_entries(date)
		`,
	},
}

// runMigrations executes any schema migrations not yet applied.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	for _, m := range migrations {
		if current >= m.version {
			continue
		}
		if _, err := db.Exec(m.query); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := db.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.version, m.name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	return nil
}

// Append inserts one record. The INSERT is a single implicit transaction, so
// a crash never leaves a partial row.
func (s *SQLiteStore) Append(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initLocked(); err != nil {
		return err
	}

	row := record.row()
	args := make([]any, len(row))
	for i, v := range row {
		args[i] = v
	}

	_, err := s.db.Exec(`
		INSERT INTO sleep_entries (
			date, bedtime, wake_time, stress_level, screen_time_minutes,
			caffeine_servings, exercise_minutes, mood, interruptions,
			sleep_duration_hours, quality
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	if err != nil {
		return &StorageError{Path: s.dbPath, Op: "append", Err: err}
	}

	return nil
}

// LoadAll returns every record ordered by insertion.
func (s *SQLiteStore) LoadAll() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initLocked(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT date, bedtime, wake_time, stress_level, screen_time_minutes,
		       caffeine_servings, exercise_minutes, mood, interruptions,
		       sleep_duration_hours, quality
		FROM sleep_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, &StorageError{Path: s.dbPath, Op: "load", Err: err}
	}
	defer rows.Close()

	records := []Record{}
	line := 0
	for rows.Next() {
		line++
		fields := make([]string, len(columns))
		dest := make([]any, len(fields))
		for i := range fields {
			dest[i] = &fields[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &CorruptionError{Path: s.dbPath, Line: line, Reason: err.Error()}
		}

		record, err := parseRow(fields)
		if err != nil {
			return nil, &CorruptionError{Path: s.dbPath, Line: line, Reason: err.Error()}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: s.dbPath, Op: "load", Err: err}
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return &StorageError{Path: s.dbPath, Op: "close", Err: err}
	}
	s.db = nil
	return nil
}
