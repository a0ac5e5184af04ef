// Package storage provides SQLite-based persistence for round results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon      Outcome = "won"
	OutcomeTimedOut Outcome = "timed_out"
)

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// Result represents one finished round.
type Result struct {
	ID          int64
	GameID      string
	Layers      int
	Outcome     Outcome
	ElapsedSecs int
	TilesLeft   int
	CreatedAt   time.Time
}

// Summary aggregates the results of one game variant.
type Summary struct {
	GameID     string
	Played     int
	Won        int
	TimedOut   int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			layers INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			tiles_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(game_id, created_at DESC);
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

// SaveResult records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeTimedOut {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO results (game_id, layers, outcome, elapsed_secs, tiles_left)
		 VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Layers, string(r.Outcome), r.ElapsedSecs, r.TilesLeft,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the latest results, newest first.
// An empty gameID returns results of every variant.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, layers, outcome, elapsed_secs, tiles_left, created_at
		 FROM results
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Layers, &outcome, &r.ElapsedSecs, &r.TilesLeft, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Summary returns win/timeout counts for one variant.
func (s *Store) Summary(gameID string) (*Summary, error) {
	sum := &Summary{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'timed_out' THEN 1 ELSE 0 END), 0)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Played, &sum.Won, &sum.TimedOut)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTimestamp(lastPlayed)
	}

	return sum, nil
}

// ClearResults deletes all results for the given variant.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
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
