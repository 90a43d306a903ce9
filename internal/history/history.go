// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a local log of past searches in SQLite. It
// records what the user asked for and how many packages came back, not
// the results themselves.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the search-history SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded search.
type Entry struct {
	ID          int64
	SearchBy    string
	Terms       []string
	ResultCount int
	Timestamp   time.Time
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		search_by TEXT NOT NULL,
		terms TEXT NOT NULL,
		result_count INTEGER NOT NULL,
		timestamp TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record stores one completed search. Terms are stored space-joined;
// AUR terms cannot contain spaces so the encoding is reversible.
func (s *Store) Record(ctx context.Context, searchBy string, terms []string, resultCount int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (search_by, terms, result_count, timestamp) VALUES (?, ?, ?, ?)`,
		searchBy, strings.Join(terms, " "), resultCount,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first. A limit of 0
// returns the default 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, search_by, terms, result_count, timestamp
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var terms, ts string
		if err := rows.Scan(&e.ID, &e.SearchBy, &terms, &e.ResultCount, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Terms = strings.Fields(terms)
		if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			e.Timestamp = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
