package memo

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "memo.db"

// Schema DDL (prd003-memo-store R3.1). One row per (algebra, identity).
const createResults = `CREATE TABLE IF NOT EXISTS results (
    algebra TEXT NOT NULL,
    identity TEXT NOT NULL,
    value TEXT NOT NULL,
    created_at TEXT NOT NULL,
    PRIMARY KEY (algebra, identity)
);`

const idxResultsAlgebra = `CREATE INDEX IF NOT EXISTS idx_results_algebra ON results(algebra);`

// SQLiteStore is a Store persisted in a SQLite database, so memoized results
// survive across processes.
type SQLiteStore struct {
	mu     sync.RWMutex
	closed bool
	db     *sql.DB
}

// OpenSQLite opens (creating if necessary) the memo database under dataDir.
func OpenSQLite(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, ddl := range []string{createResults, idxResultsAlgebra} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("initialize schema: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(algebra string, id uuid.UUID) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrStoreClosed
	}

	var value string
	err := s.db.QueryRow(
		`SELECT value FROM results WHERE algebra = ? AND identity = ?`,
		algebra, id.String(),
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get result: %w", err)
	}
	return value, true, nil
}

// Put implements Store.
func (s *SQLiteStore) Put(algebra string, id uuid.UUID, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(
		`INSERT INTO results (algebra, identity, value, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (algebra, identity) DO UPDATE SET value = excluded.value`,
		algebra, id.String(), value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put result: %w", err)
	}
	return nil
}

// Len implements Store.
func (s *SQLiteStore) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
