// Package history persists a log of past generations in SQLite.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dateseq/dateseq/internal/sqlutil"
)

// currentSchemaVersion bumps whenever the generations table changes shape;
// an older database is dropped and recreated rather than migrated.
const currentSchemaVersion = 1

// DefaultMaxEntries caps retained rows when no override is configured.
const DefaultMaxEntries = 500

// Store is the generation-history database handle.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// Entry is one recorded generation.
type Entry struct {
	ID           int64     `json:"id"`
	RunAt        time.Time `json:"run_at"`
	First        string    `json:"first"`
	Last         string    `json:"last"`
	Count        int64     `json:"count"`
	Increment    int64     `json:"increment"`
	Days         int64     `json:"days,omitempty"`
	Reverse      bool      `json:"reverse,omitempty"`
	OutputFormat string    `json:"output_format"`
}

// Open opens or creates the history database. maxEntries caps retained
// rows; 0 keeps DefaultMaxEntries.
func Open(path string, maxEntries int) (*Store, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := &Store{db: db, maxEntries: maxEntries}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initialize() error {
	schema := `
		-- WAL keeps concurrent dsq invocations from blocking each other.
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS generations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_at INTEGER NOT NULL,        -- Unix timestamp
			first_date TEXT NOT NULL,
			last_date TEXT NOT NULL,
			count INTEGER NOT NULL,
			increment INTEGER NOT NULL,
			days INTEGER NOT NULL,
			reverse INTEGER NOT NULL DEFAULT 0,
			output_format TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_generations_run_at
			ON generations(run_at DESC, id DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}

	version, err := s.schemaVersion()
	if err != nil {
		return err
	}
	if version != "" && version != strconv.Itoa(currentSchemaVersion) {
		// Incompatible layout from an older binary: history is a cache,
		// drop and start over.
		if _, err := s.db.Exec(`DROP TABLE IF EXISTS generations`); err != nil {
			return fmt.Errorf("failed to reset history schema: %w", err)
		}
		if _, err := s.db.Exec(schema); err != nil {
			return fmt.Errorf("failed to reinitialize history schema: %w", err)
		}
	}

	_, err = s.db.Exec(
		`INSERT INTO meta (key, value) VALUES ('version', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(currentSchemaVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

func (s *Store) schemaVersion() (string, error) {
	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&version)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Record appends one generation and prunes rows beyond the retention cap.
func (s *Store) Record(e Entry) error {
	runAt := e.RunAt
	if runAt.IsZero() {
		runAt = time.Now()
	}

	reverse := 0
	if e.Reverse {
		reverse = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO generations
			(run_at, first_date, last_date, count, increment, days, reverse, output_format)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runAt.Unix(), e.First, e.Last, e.Count, e.Increment, e.Days, reverse, e.OutputFormat,
	)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM generations WHERE id NOT IN (
			SELECT id FROM generations ORDER BY run_at DESC, id DESC LIMIT ?
		)`,
		s.maxEntries,
	)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxEntries
	}

	rows, err := s.db.Query(
		`SELECT id, run_at, first_date, last_date, count, increment, days, reverse, output_format
		 FROM generations
		 ORDER BY run_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Entry, error) {
		var e Entry
		var runAt int64
		var reverse int
		if err := rows.Scan(&e.ID, &runAt, &e.First, &e.Last, &e.Count,
			&e.Increment, &e.Days, &reverse, &e.OutputFormat); err != nil {
			return Entry{}, err
		}
		e.RunAt = time.Unix(runAt, 0).UTC()
		e.Reverse = reverse != 0
		return e, nil
	})
}

// Clear removes all entries and reports how many were deleted.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM generations`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared history rows: %w", err)
	}
	return deleted, nil
}
