// Package storage provides the SQLite-based play journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the play journal.
type Store struct {
	db *sql.DB
}

// PlayEntry is one recorded play request.
type PlayEntry struct {
	ID              int64
	DifficultyIndex int
	DifficultySize  int
	Score           int // Score displayed when play was pressed
	CreatedAt       time.Time
}

// SizeStats aggregates play requests per difficulty size.
type SizeStats struct {
	DifficultySize int
	Plays          int
	LastPlayed     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty_index INTEGER NOT NULL,
			difficulty_size INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_size ON plays(difficulty_size);
		CREATE INDEX IF NOT EXISTS idx_plays_created ON plays(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordPlay journals a play request.
// Returns the ID of the inserted record.
func (s *Store) RecordPlay(index, size, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO plays (difficulty_index, difficulty_size, score) VALUES (?, ?, ?)",
		index, size, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record play: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentPlays retrieves the latest play requests, newest first.
func (s *Store) RecentPlays(limit int) ([]PlayEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty_index, difficulty_size, score, created_at
		 FROM plays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var entries []PlayEntry
	for rows.Next() {
		var e PlayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.DifficultyIndex, &e.DifficultySize, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PlayCount returns the number of journaled play requests.
func (s *Store) PlayCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM plays").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count plays: %w", err)
	}
	return n, nil
}

// PlaysBySize aggregates plays per difficulty size, largest size first.
func (s *Store) PlaysBySize() ([]SizeStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty_size, COUNT(*), MAX(created_at)
		 FROM plays
		 GROUP BY difficulty_size
		 ORDER BY difficulty_size DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get play stats: %w", err)
	}
	defer rows.Close()

	var stats []SizeStats
	for rows.Next() {
		var st SizeStats
		var lastPlayed any
		if err := rows.Scan(&st.DifficultySize, &st.Plays, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Clear deletes every journaled play.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM plays"); err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
