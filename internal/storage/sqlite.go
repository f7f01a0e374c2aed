// Package storage provides SQLite-based persistence for finished match
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished game.
type MatchRecord struct {
	ID        int64
	Script    string // script name the match was played from
	Columns   int
	Rows      int
	Players   int
	Winner    string // winning player's letter, empty when nobody won
	Turns     int    // player-turns resolved before the game ended
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			script TEXT NOT NULL,
			columns INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			players INTEGER NOT NULL,
			winner TEXT,
			turns INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_script ON matches(script);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);
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

// SaveMatch records a finished match. Returns the ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	var winner any
	if rec.Winner != "" {
		winner = rec.Winner
	}

	result, err := s.db.Exec(
		`INSERT INTO matches (script, columns, rows, players, winner, turns)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Script, rec.Columns, rec.Rows, rec.Players, winner, rec.Turns,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, script, columns, rows, players, winner, turns, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// MatchesByScript retrieves matches recorded for the given script, newest first.
func (s *Store) MatchesByScript(script string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, script, columns, rows, players, winner, turns, created_at
		 FROM matches
		 WHERE script = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		script, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// WinCounts returns how often each player letter won the given script.
// Matches without a winner are counted under the empty key.
func (s *Store) WinCounts(script string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT COALESCE(winner, ''), COUNT(*)
		 FROM matches
		 WHERE script = ?
		 GROUP BY winner`,
		script,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query win counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[winner] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearMatches deletes all matches recorded for the given script.
func (s *Store) ClearMatches(script string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE script = ?", script)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// scanMatches reads all rows of a matches query.
func scanMatches(rows *sql.Rows) ([]MatchRecord, error) {
	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var winner sql.NullString
		var createdAt any
		if err := rows.Scan(
			&rec.ID, &rec.Script, &rec.Columns, &rec.Rows,
			&rec.Players, &winner, &rec.Turns, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if winner.Valid {
			rec.Winner = winner.String
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
